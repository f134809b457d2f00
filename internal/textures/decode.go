package textures

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedChannels is returned for images that are not 3 or 4 channel.
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// Pixels is a decoded image packed row by row with no padding, bottom row
// first so that texture coordinate (0,0) is the lower-left corner.
type Pixels struct {
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA, straight alpha)
	Data     []byte
}

// Decode reads an image and packs it for upload. Gray images and anything
// else that is not RGB or RGBA fail with ErrUnsupportedChannels.
func Decode(r io.Reader) (Pixels, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return Pixels{}, fmt.Errorf("textures: decode: %w", err)
	}
	ch := channels(img)
	if ch != 3 && ch != 4 {
		return Pixels{}, fmt.Errorf("textures: %s image with %d channels: %w", format, ch, ErrUnsupportedChannels)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p := Pixels{Width: w, Height: h, Channels: ch, Data: make([]byte, 0, w*h*ch)}
	if ch == 4 {
		// straight alpha, read bottom row first; FlipV premultiplies
		for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				p.Data = append(p.Data, c.R, c.G, c.B, c.A)
			}
		}
		return p, nil
	}

	flipped := transform.FlipV(img)
	fb := flipped.Bounds()
	for y := fb.Min.Y; y < fb.Max.Y; y++ {
		for x := fb.Min.X; x < fb.Max.X; x++ {
			c := flipped.RGBAAt(x, y)
			p.Data = append(p.Data, c.R, c.G, c.B)
		}
	}
	return p, nil
}

// channels reports how many channels the source image carries.
func channels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return 4
	case *image.RGBA:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.RGBA64:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return 4
			}
		}
		return 3
	}
	return 0
}
