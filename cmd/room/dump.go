package main

import (
	"context"
	"flag"
	"os"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/commands"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/composer"
)

func registerDump(r *commands.Registry) {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	var s settings
	s.bind(fs)
	frames := fs.Int("frames", 1, "number of frames to render")

	r.Register("dump", "print the uniform and draw call trace as YAML (no window)", fs, func(ctx context.Context) error {
		cfg, warnings := s.load()
		log := newLogger(cfg, false, os.Stderr)
		for _, w := range warnings {
			log.Warn("room: config", "err", w)
		}
		desc, err := loadScene(cfg.Scene)
		if err != nil {
			return err
		}
		d, err := composer.Record(desc, os.DirFS(cfg.TextureDir), *frames, log)
		if err != nil {
			return err
		}
		return d.WriteYAML(os.Stdout)
	})
}
