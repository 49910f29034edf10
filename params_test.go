package sapling

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeClampsInvariants(t *testing.T) {
	p := Params{MaxForks: 0, Speed: 0}
	got := p.Normalize()
	if got.MaxForks != 1 {
		t.Errorf("MaxForks = %d, want 1", got.MaxForks)
	}
	if got.Speed != 1 {
		t.Errorf("Speed = %d, want 1", got.Speed)
	}

	p = Params{MaxForks: -4, Speed: -9}
	got = p.Normalize()
	if got.MaxForks != 1 || got.Speed != 1 {
		t.Errorf("negative values not clamped: %+v", got)
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	p := DefaultParams()
	if got := p.Normalize(); got != p {
		t.Errorf("Normalize changed a valid bundle: %+v -> %+v", p, got)
	}
}

func TestNormalizeDropsNonFinite(t *testing.T) {
	p := DefaultParams()
	p.StartBranch.Length = math.NaN()
	p.StartBranch.Theta = math.Inf(1)
	got := p.Normalize()
	if got.StartBranch.Length != 0 || got.StartBranch.Theta != 0 {
		t.Errorf("non-finite fields survived: %+v", got.StartBranch)
	}
}

func TestPresetNeuroSynapse(t *testing.T) {
	p, err := Preset(PresetNeuroSynapse, 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if p.StartBranch.Start != (Point{400, 300}) {
		t.Errorf("start = %v, want canvas center", p.StartBranch.Start)
	}
	if p.StartBranch.Length != 1 || p.MaxForks != 8 || p.Speed != 3 {
		t.Errorf("preset = %+v", p)
	}
	if math.Abs(p.StartBranch.Theta-math.Pi/4) > eps {
		t.Errorf("theta = %v, want pi/4", p.StartBranch.Theta)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("bonsai", 100, 100)
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}
