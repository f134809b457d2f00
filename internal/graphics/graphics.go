package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window Run opens. A zero Width and Height open the
// window at the size of the monitor.
type Window struct {
	Width      int32
	Height     int32
	Title      string
	TargetFPS  int32
	Fullscreen bool
}

// Hooks are called by Run. Any of them may be nil.
type Hooks struct {
	// Setup runs once after the window and GL context exist.
	Setup func() error
	// Update runs at the start of each frame, before drawing.
	Update func(dt float32)
	// Draw3D runs inside BeginMode3D with the view's camera.
	Draw3D func()
	// Overlay runs after the 3D pass, in screen space.
	Overlay func()
	// Teardown runs before the window closes, even when Setup failed.
	Teardown func()
}

// Background is the clear color.
var Background = rl.NewColor(24, 24, 28, 255)

// Run opens the window and runs the main loop until the window is closed or
// ctx is done.
// Each frame it updates the camera, calls Update, then clears the screen and
// draws the 3D pass followed by the overlay.
func Run(ctx context.Context, win Window, view *View, hooks Hooks) error {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(win.TargetFPS)

	if hooks.Teardown != nil {
		defer hooks.Teardown()
	}
	if hooks.Setup != nil {
		if err := hooks.Setup(); err != nil {
			return err
		}
	}

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		view.Update()
		if hooks.Update != nil {
			hooks.Update(rl.GetFrameTime())
		}

		rl.BeginDrawing()
		rl.ClearBackground(Background)
		view.Draw(hooks.Draw3D)
		if hooks.Overlay != nil {
			hooks.Overlay()
		}
		rl.EndDrawing()
	}
	return nil
}
