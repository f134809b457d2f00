// Command room renders a static 3D room scene with raylib.
//
//	room run       open the window and render
//	room dump      print the uniform and draw call trace as YAML
//	room validate  check a scene file and its textures
//	room config    write the default config file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := commands.NewRegistry()
	registerRun(r)
	registerDump(r)
	registerValidate(r)
	registerConfig(r)

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"run"}
	}
	err := r.Execute(ctx, args)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, commands.ErrUnknownCommand):
		fmt.Fprintf(os.Stderr, "room: %v\n\ncommands:\n", err)
		r.Usage(os.Stderr)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "room: %v\n", err)
		os.Exit(1)
	}
}
