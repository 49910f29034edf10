package sapling

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shared by the window and the headless
// renderer. Fields missing from a file keep their DefaultConfig values.
type Config struct {
	Window     WindowConfig   `yaml:"window"`
	Params     Params         `yaml:"params"`
	Seed       uint64         `yaml:"seed"`
	Background string         `yaml:"background"`
	LineWidth  float64        `yaml:"line_width"`
	ExportDir  string         `yaml:"export_dir"`
	Headless   HeadlessConfig `yaml:"headless"`
}

// WindowConfig sizes the window and the tree canvas.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	HidePanel  bool   `yaml:"hide_panel"`
	ShowStatus bool   `yaml:"show_status"`
}

// HeadlessConfig bounds a windowless render.
type HeadlessConfig struct {
	// MaxTicks caps the number of refresh ticks simulated. Zero means no cap.
	MaxTicks int    `yaml:"max_ticks"`
	Output   string `yaml:"output"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	rc := DefaultRunConfig()
	return Config{
		Window: WindowConfig{
			Title:      rc.Title,
			Width:      rc.Width,
			Height:     rc.Height,
			ShowStatus: rc.ShowStatus,
		},
		Params:     rc.Params,
		Background: rc.Background.String(),
		LineWidth:  1,
		ExportDir:  rc.ExportDir,
		Headless: HeadlessConfig{
			MaxTicks: 20000,
			Output:   "tree.png",
		},
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML configuration on top of DefaultConfig and
// validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Params = cfg.Params.Normalize()
	return cfg, nil
}

// Validate rejects values that cannot be clamped into range.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseColor(c.Params.LineColor); err != nil {
		return fmt.Errorf("params.line_color: %w", err)
	}
	if c.Background != "" {
		if _, err := ParseColor(c.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	return nil
}

// RunConfig converts the file configuration into window settings.
func (c Config) RunConfig() RunConfig {
	rc := DefaultRunConfig()
	rc.Title = c.Window.Title
	rc.Width = c.Window.Width
	rc.Height = c.Window.Height
	rc.HidePanel = c.Window.HidePanel
	rc.ShowStatus = c.Window.ShowStatus
	rc.Params = c.Params.Normalize()
	rc.Seed = c.Seed
	rc.LineWidth = float32(c.LineWidth)
	if c.Background != "" {
		rc.Background = MustParseColor(c.Background)
	}
	if c.ExportDir != "" {
		rc.ExportDir = c.ExportDir
	}
	return rc
}

// RenderOptions converts the file configuration into headless settings.
func (c Config) RenderOptions() RenderOptions {
	opts := RenderOptions{
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		Params:    c.Params.Normalize(),
		Seed:      c.Seed,
		MaxTicks:  c.Headless.MaxTicks,
		LineWidth: c.LineWidth,
	}
	if c.Background != "" {
		bg := MustParseColor(c.Background)
		opts.Background = &bg
	}
	return opts
}
