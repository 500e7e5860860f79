package guibridge

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/guibridge/imgui"
	"github.com/pelletier/go-toml/v2"
)

// Config is the renderer configuration as read from a TOML file:
//
//	[font]
//	path = "fonts/DejaVuSans.ttf" # empty for the built-in font
//	size = 15.0
//
//	[buffers]
//	growth = 1.5
//
//	[log]
//	verbose = false
type Config struct {
	Font    FontConfig   `toml:"font"`
	Buffers BufferConfig `toml:"buffers"`
	Log     LogConfig    `toml:"log"`
}

// FontConfig selects the font atlas font.
type FontConfig struct {
	Path string  `toml:"path"`
	Size float64 `toml:"size"`
}

// BufferConfig tunes GPU buffer growth.
type BufferConfig struct {
	Growth float64 `toml:"growth"`
}

// LogConfig controls logging.
type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Font:    FontConfig{Size: imgui.DefaultFontSize},
		Buffers: BufferConfig{Growth: DefaultBufferGrowth},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. A relative font
// path is resolved against the file's directory.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Font.Path != "" && !filepath.IsAbs(cfg.Font.Path) {
		cfg.Font.Path = filepath.Join(filepath.Dir(path), cfg.Font.Path)
	}
	return cfg, nil
}

// ParseConfig decodes TOML on top of DefaultConfig. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Font.Size <= 0 {
		return fmt.Errorf("font.size must be positive, got %v", c.Font.Size)
	}
	if c.Buffers.Growth < 1 {
		return fmt.Errorf("buffers.growth must be at least 1, got %v", c.Buffers.Growth)
	}
	return nil
}

// Options converts the configuration into renderer options, loading the
// font file if one is set.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithBufferGrowth(c.Buffers.Growth)}

	if c.Font.Path == "" {
		return append(opts, WithFontSize(c.Font.Size)), nil
	}
	data, err := os.ReadFile(c.Font.Path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return append(opts, WithFont(imgui.FontConfig{
		Name:       filepath.Base(c.Font.Path),
		Data:       data,
		SizePixels: c.Font.Size,
	})), nil
}
