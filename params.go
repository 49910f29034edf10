package sapling

import (
	"errors"
	"fmt"
	"math"
)

// Params is the bundle that decides how a tree grows. The host owns the
// authoritative copy; a Grower reads a snapshot when Init is called.
type Params struct {
	StartBranch Branch `yaml:"start_branch"`
	MaxForks    int    `yaml:"max_forks"`
	LineColor   string `yaml:"line_color"`
	// Speed is the number of refresh ticks between drains. 1 drains every tick.
	Speed int `yaml:"speed"`
}

// PresetNeuroSynapse names the centered, short-branch preset.
const PresetNeuroSynapse = "neuro-synapse"

// ErrUnknownPreset is returned by Preset for names it does not know.
var ErrUnknownPreset = errors.New("sapling: unknown preset")

// DefaultParams returns the bundle a fresh host starts with.
func DefaultParams() Params {
	return Params{
		StartBranch: Branch{
			Start:  Point{X: 0, Y: 0},
			Length: 10,
			Theta:  math.Pi / 4,
		},
		MaxForks:  4,
		LineColor: "rgba(255,255,255,0.3)",
		Speed:     3,
	}
}

// Preset returns a named bundle sized to a width×height canvas.
func Preset(name string, width, height float64) (Params, error) {
	switch name {
	case PresetNeuroSynapse:
		return Params{
			StartBranch: Branch{
				Start:  Point{X: width / 2, Y: height / 2},
				Length: 1,
				Theta:  math.Pi / 4,
			},
			MaxForks:  8,
			LineColor: "rgba(255,255,255,0.3)",
			Speed:     3,
		}, nil
	}
	return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Normalize clamps p to its invariants: MaxForks and Speed are at least 1 and
// non-finite branch fields are reset to zero.
func (p Params) Normalize() Params {
	if p.MaxForks < 1 {
		p.MaxForks = 1
	}
	if p.Speed < 1 {
		p.Speed = 1
	}
	p.StartBranch.Start.X = finiteOr(p.StartBranch.Start.X, 0)
	p.StartBranch.Start.Y = finiteOr(p.StartBranch.Start.Y, 0)
	p.StartBranch.Length = finiteOr(p.StartBranch.Length, 0)
	p.StartBranch.Theta = finiteOr(p.StartBranch.Theta, 0)
	return p
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
