package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/commands"
)

func registerValidate(r *commands.Registry) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	var s settings
	s.bind(fs)

	r.Register("validate", "check a scene and its texture files", fs, func(ctx context.Context) error {
		cfg, warnings := s.load()
		log := newLogger(cfg, false, os.Stderr)
		for _, w := range warnings {
			log.Warn("room: config", "err", w)
		}
		desc, err := loadScene(cfg.Scene)
		if err != nil {
			return err
		}
		problems := append(desc.Validate(), desc.CheckFiles(os.DirFS(cfg.TextureDir))...)
		for _, p := range problems {
			fmt.Println(p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%s: %d problems", desc.Name, len(problems))
		}
		fmt.Printf("%s: ok (%d objects)\n", desc.Name, len(desc.Objects))
		return nil
	})
}
