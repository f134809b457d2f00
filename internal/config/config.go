package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/room.toml"

// Window controls the raylib window.
type Window struct {
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Title      string `toml:"title"`
	TargetFPS  int32  `toml:"target_fps"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Size returns the size to open the window at. Fullscreen gives 0x0, which
// raylib resizes to the monitor once the window exists.
func (w Window) Size() (width, height int32) {
	if w.Fullscreen {
		return 0, 0
	}
	return w.Width, w.Height
}

// Camera is the initial perspective camera.
type Camera struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	Up       [3]float32 `toml:"up"`
	Fovy     float32    `toml:"fovy"`
	// Mode is "fixed", "free" (mouse and WASD) or "orbital".
	Mode     string     `toml:"mode"`
}

// Config holds viewer preferences. The scene itself lives in its own YAML
// file; an empty Scene selects the embedded room.
type Config struct {
	Window     Window `toml:"window"`
	Camera     Camera `toml:"camera"`
	Scene      string `toml:"scene"`
	TextureDir string `toml:"texture_dir"`
	ShowStats  bool   `toml:"show_stats"`
	ShowGrid   bool   `toml:"show_grid"`
	Watch      bool   `toml:"watch"`
	LogFile    string `toml:"log_file"`
	LogLevel   string `toml:"log_level"`
}

// Default returns the settings used when no config file exists: a 1280x720
// window and a camera looking into the corner of the room.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "room",
			TargetFPS: 60,
		},
		Camera: Camera{
			Position: [3]float32{-18, 16, 30},
			Target:   [3]float32{6, 8, -8},
			Up:       [3]float32{0, 1, 0},
			Fovy:     45,
			Mode:     "fixed",
		},
		TextureDir: ".",
		ShowGrid:   false,
		LogFile:    "logs/room.txt",
		LogLevel:   "info",
	}
}

// Load reads the config at path. A missing file yields Default() and no
// error. A malformed file yields Default() and the parse error, so the caller
// can log it and carry on.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Environment variables read by ApplyEnv.
const (
	EnvScene      = "ROOM_SCENE"
	EnvTextureDir = "ROOM_TEXTURE_DIR"
	EnvLogLevel   = "ROOM_LOG_LEVEL"
	EnvWatch      = "ROOM_WATCH"
)

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv. A ROOM_WATCH value that is not a bool is an error and leaves
// Watch unchanged.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvScene); ok {
		c.Scene = v
	}
	if v, ok := lookup(EnvTextureDir); ok && v != "" {
		c.TextureDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvWatch); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWatch, err)
		}
		c.Watch = b
	}
	return nil
}
