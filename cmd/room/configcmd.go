package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/commands"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/config"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/scene"
)

func registerConfig(r *commands.Registry) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	out := fs.String("out", config.DefaultPath, "where to write the config")
	sceneOut := fs.String("scene-out", "", "also write the built-in room scene here")

	r.Register("config", "write the default config file", fs, func(ctx context.Context) error {
		if err := config.Save(*out, config.Default()); err != nil {
			return err
		}
		fmt.Println("wrote", *out)
		if *sceneOut == "" {
			return nil
		}
		if err := os.WriteFile(*sceneOut, scene.RoomYAML(), 0644); err != nil {
			return err
		}
		fmt.Println("wrote", *sceneOut)
		return nil
	})
}
