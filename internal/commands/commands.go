package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

var (
	// ErrNoCommand is returned by Execute when args is empty.
	ErrNoCommand = errors.New("missing subcommand")
	// ErrUnknownCommand is returned by Execute for names that were never registered.
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(ctx context.Context) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet and should use
// flag.ContinueOnError; run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(ctx context.Context) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run.
func (r *Registry) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run(ctx)
}

// Usage writes one line per command with its summary.
func (r *Registry) Usage(w io.Writer) {
	width := 0
	for n := range r.cmds {
		width = max(width, len(n))
	}
	for _, n := range r.Names() {
		fmt.Fprintf(w, "  %-*s  %s\n", width, n, r.cmds[n].Summary)
	}
}
