package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/commands"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/composer"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/config"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/graphics"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/rlgpu"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/scene"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/stats"
)

func registerRun(r *commands.Registry) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var s settings
	s.bind(fs)
	watch := fs.Bool("watch", false, "reload the scene file when it changes")

	r.Register("run", "open the window and render the scene", fs, func(ctx context.Context) error {
		cfg, warnings := s.load()
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "watch" {
				cfg.Watch = *watch
			}
		})
		log := newLogger(cfg, true, os.Stderr)
		for _, w := range warnings {
			log.Warn("room: config", "err", w)
		}
		return view(ctx, cfg, log)
	})
}

// view opens the window and renders the configured scene until the window
// closes. GPU work stays on this goroutine; the file watcher hands reloaded
// descriptions over through a channel that Update drains between frames.
func view(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	desc, err := loadScene(cfg.Scene)
	if err != nil {
		return err
	}
	mode, err := graphics.ParseCameraMode(cfg.Camera.Mode)
	if err != nil {
		log.Warn("room: camera", "err", err)
	}
	cam := graphics.NewView(cfg.Camera.Position, cfg.Camera.Target, cfg.Camera.Up, cfg.Camera.Fovy, mode)
	cam.GridVisible = cfg.ShowGrid
	overlay := stats.New(rl.GetFPS)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	reloads := make(chan scene.Description, 1)

	var (
		prog  *rlgpu.Shader
		tex   *rlgpu.Textures
		comp  *composer.Composer
		frame composer.Frame
	)
	names := shader.DefaultNames()
	rlgpu.RouteTraceLog(log)

	hooks := graphics.Hooks{
		Setup: func() error {
			var err error
			if prog, err = rlgpu.LoadShader(log); err != nil {
				return err
			}
			tex = rlgpu.NewTextures()
			comp, err = composer.New(composer.Deps{
				Uniforms: prog,
				Names:    names,
				Textures: tex,
				Files:    os.DirFS(cfg.TextureDir),
				Meshes:   rlgpu.NewMeshes(prog),
				Log:      log,
			}, desc)
			if err != nil {
				return err
			}
			if err := comp.Prepare(); err != nil {
				return err
			}
			if cfg.Watch && cfg.Scene != "" {
				go watch(ctx, cfg.Scene, log, reloads)
			}
			return nil
		},
		Update: func(float32) {
			select {
			case d := <-reloads:
				if err := comp.Reload(d); err != nil {
					log.Error("room: reload failed", "err", err)
				}
			default:
			}
		},
		Draw3D: func() {
			if !comp.Prepared() {
				return
			}
			tex.Rebind()
			prog.SetVec3(names.ViewPosition, cam.Position())
			frame = comp.Render()
		},
		Overlay: func() {
			if cfg.ShowStats {
				graphics.DrawLines(overlay.Tick(frame))
			}
		},
		Teardown: func() {
			cancel()
			if comp != nil {
				comp.Release()
			}
			if prog != nil {
				prog.Unload()
			}
		},
	}

	width, height := cfg.Window.Size()
	win := graphics.Window{
		Width:      width,
		Height:     height,
		Title:      cfg.Window.Title,
		TargetFPS:  cfg.Window.TargetFPS,
		Fullscreen: cfg.Window.Fullscreen,
	}
	return graphics.Run(ctx, win, cam, hooks)
}

// watch runs scene.Watch and keeps only the newest pending description.
func watch(ctx context.Context, path string, log *slog.Logger, out chan scene.Description) {
	err := scene.Watch(ctx, path, log, func(d scene.Description) {
		select {
		case <-out:
		default:
		}
		out <- d
	})
	if err != nil {
		log.Error("room: watch stopped", "err", err)
	}
}
