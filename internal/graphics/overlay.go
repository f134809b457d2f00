package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
)

// DrawLines draws lines right-aligned at the top-right corner in green, one
// under the other. Call from Hooks.Overlay.
func DrawLines(lines []string) {
	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)
	for _, text := range lines {
		w := rl.MeasureText(text, overlayFontSize)
		rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
		y += overlayLineHeight
	}
}
