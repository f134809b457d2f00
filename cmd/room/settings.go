package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/config"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/env"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/logger"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/scene"
)

// settings are the flags shared by every command that reads a scene.
type settings struct {
	configPath string
	scenePath  string
	textureDir string
}

func (s *settings) bind(fs *flag.FlagSet) {
	fs.StringVar(&s.configPath, "config", config.DefaultPath, "config file")
	fs.StringVar(&s.scenePath, "scene", "", "scene YAML file (default: the built-in room)")
	fs.StringVar(&s.textureDir, "textures", "", "directory texture paths are relative to")
}

// load reads .env, the config file and the environment, then applies flags.
// Problems that still leave a usable config are returned as warnings.
func (s *settings) load() (config.Config, []error) {
	var warnings []error
	if _, err := env.Load(".env"); err != nil {
		warnings = append(warnings, err)
	}
	cfg, err := config.Load(s.configPath)
	if err != nil {
		warnings = append(warnings, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		warnings = append(warnings, err)
	}
	if s.scenePath != "" {
		cfg.Scene = s.scenePath
	}
	if s.textureDir != "" {
		cfg.TextureDir = s.textureDir
	}
	return cfg, warnings
}

// newLogger builds the logger described by cfg. file is false for commands
// whose output goes to stdout; they log warnings to stderr only.
func newLogger(cfg config.Config, file bool, mirror io.Writer) *slog.Logger {
	level, lerr := logger.ParseLevel(cfg.LogLevel)
	path := cfg.LogFile
	if !file {
		path = ""
		level = max(level, slog.LevelWarn)
	}
	log, _ := logger.New(path, level, mirror)
	if lerr != nil {
		log.Warn("room: bad log level", "err", lerr)
	}
	return log
}

func loadScene(path string) (scene.Description, error) {
	if path == "" {
		return scene.Room(), nil
	}
	return scene.Load(path)
}
