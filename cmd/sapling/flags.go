package main

import (
	"fmt"

	"github.com/phanxgames/sapling"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addTreeFlags registers the flags shared by run and render.
func addTreeFlags(fs *pflag.FlagSet) {
	fs.Int("width", 0, "Canvas width in pixels")
	fs.Int("height", 0, "Canvas height in pixels")
	fs.Float64("x", 0, "Root branch start X")
	fs.Float64("y", 0, "Root branch start Y")
	fs.Float64("length", 0, "Root branch length")
	fs.Float64("theta", 0, "Root branch angle in radians")
	fs.Int("forks", 0, "Levels that always fork (min 1)")
	fs.Int("speed", 0, "Refresh ticks per drained frame (min 1)")
	fs.String("color", "", "Line color (#rgba, rgb(), rgba())")
	fs.String("background", "", "Background color")
	fs.Uint64("seed", 0, "Random seed (0 picks one)")
	fs.String("preset", "", "Named preset applied before other flags ("+sapling.PresetNeuroSynapse+")")
}

// loadConfig reads --config, if any, and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (sapling.Config, error) {
	return loadConfigSized(cmd, 0, 0)
}

// loadConfigSized is loadConfig for a canvas whose size is fixed by the
// output device. A positive width and height replace the configured window
// before flags apply, so --preset centers on that canvas and explicit flags
// still win.
func loadConfigSized(cmd *cobra.Command, width, height int) (sapling.Config, error) {
	cfg := sapling.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = sapling.LoadConfig(path); err != nil {
			return sapling.Config{}, err
		}
	}
	if width > 0 && height > 0 {
		cfg.Window.Width, cfg.Window.Height = width, height
	}
	if err := applyTreeFlags(cmd.Flags(), &cfg); err != nil {
		return sapling.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return sapling.Config{}, err
	}
	cfg.Params = cfg.Params.Normalize()
	return cfg, nil
}

func applyTreeFlags(fs *pflag.FlagSet, cfg *sapling.Config) error {
	if fs.Changed("width") {
		cfg.Window.Width, _ = fs.GetInt("width")
	}
	if fs.Changed("height") {
		cfg.Window.Height, _ = fs.GetInt("height")
	}
	if fs.Changed("preset") {
		name, _ := fs.GetString("preset")
		p, err := sapling.Preset(name, float64(cfg.Window.Width), float64(cfg.Window.Height))
		if err != nil {
			return err
		}
		cfg.Params = p
	}

	b := &cfg.Params.StartBranch
	if fs.Changed("x") {
		b.Start.X, _ = fs.GetFloat64("x")
	}
	if fs.Changed("y") {
		b.Start.Y, _ = fs.GetFloat64("y")
	}
	if fs.Changed("length") {
		b.Length, _ = fs.GetFloat64("length")
	}
	if fs.Changed("theta") {
		b.Theta, _ = fs.GetFloat64("theta")
	}
	if fs.Changed("forks") {
		cfg.Params.MaxForks, _ = fs.GetInt("forks")
	}
	if fs.Changed("speed") {
		cfg.Params.Speed, _ = fs.GetInt("speed")
	}
	if fs.Changed("color") {
		c, _ := fs.GetString("color")
		if _, err := sapling.ParseColor(c); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		cfg.Params.LineColor = c
	}
	if fs.Changed("background") {
		c, _ := fs.GetString("background")
		if _, err := sapling.ParseColor(c); err != nil {
			return fmt.Errorf("--background: %w", err)
		}
		cfg.Background = c
	}
	if fs.Changed("seed") {
		cfg.Seed, _ = fs.GetUint64("seed")
	}
	return nil
}
