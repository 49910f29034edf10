package sapling

import "testing"

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := DefaultRunConfig()
	cfg.Width, cfg.Height = 320, 240
	cfg.ShowStatus = false
	cfg.Seed = 11
	cfg.ExportDir = t.TempDir()
	cfg.Params.StartBranch.Start = Point{160, 120}
	return NewApp(cfg)
}

func TestNewAppStartsGrowing(t *testing.T) {
	a := newTestApp(t)
	if a.Grower().State() != StateGrowing {
		t.Errorf("state = %v, want growing", a.Grower().State())
	}
	if a.Grower().DrawnCount() != 1 {
		t.Errorf("DrawnCount = %d, want the root", a.Grower().DrawnCount())
	}
	if a.Panel().Params() != a.Params() {
		t.Error("panel should mirror the host bundle")
	}
	if w, h := a.Layout(1, 1); w != 320 || h != 240 {
		t.Errorf("Layout = %dx%d, want 320x240", w, h)
	}
}

func TestNewAppDefaultsSize(t *testing.T) {
	a := NewApp(RunConfig{Params: DefaultParams(), Seed: 1})
	if w, h := a.Grower().Size(); w != 960 || h != 640 {
		t.Errorf("Size = %vx%v, want 960x640", w, h)
	}
	if a.cfg.ExportDir != "exports" {
		t.Errorf("ExportDir = %q", a.cfg.ExportDir)
	}
}

func TestAppCommitRestartsTree(t *testing.T) {
	a := newTestApp(t)
	for range 9 {
		a.Grower().Tick()
	}

	a.Panel().Select(FieldMaxForks)
	a.Panel().Adjust(2)
	a.Panel().Commit()

	if got := a.Params().MaxForks; got != 6 {
		t.Errorf("host MaxForks = %d, want 6", got)
	}
	g := a.Grower()
	if g.Params().MaxForks != 6 {
		t.Errorf("grower MaxForks = %d, want 6", g.Params().MaxForks)
	}
	if g.FrameCount() != 0 || g.DrawnCount() != 1 {
		t.Errorf("restart left frames=%d drawn=%d", g.FrameCount(), g.DrawnCount())
	}
	if g.State() != StateGrowing {
		t.Errorf("state = %v, want growing", g.State())
	}
}

func TestAppRenderUsesDraft(t *testing.T) {
	a := newTestApp(t)
	a.Panel().Select(FieldSpeed)
	a.Panel().Adjust(4)
	a.Panel().TriggerRender()

	if got := a.Params().Speed; got != 7 {
		t.Errorf("Speed = %d, want 7", got)
	}
	if a.Panel().Dirty() {
		t.Error("panel still dirty after render")
	}
}
