package sapling

import (
	"math"
	"testing"
)

// segment is one stroke captured by recordSurface.
type segment struct {
	from, to Point
	color    Color
}

// recordSurface captures strokes instead of drawing them.
type recordSurface struct {
	lines  []segment
	clears int
}

func (r *recordSurface) StrokeLine(from, to Point, c Color) {
	r.lines = append(r.lines, segment{from, to, c})
}

func (r *recordSurface) Clear() {
	r.lines = r.lines[:0]
	r.clears++
}

func pointNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func newTestGrower(w, h float64, p Params, rng RandomSource) (*Grower, *recordSurface) {
	g := NewGrower(w, h, WithParams(p), WithRandom(rng))
	s := &recordSurface{}
	g.AttachSurface(s)
	return g, s
}

func TestInitDrawsRootAndStagesTwo(t *testing.T) {
	p := Params{StartBranch: Branch{Point{0, 0}, 10, 0}, MaxForks: 1, Speed: 1}
	g, s := newTestGrower(500, 500, p, NewSequenceSource(0.5))

	g.Init()

	if len(s.lines) != 1 {
		t.Fatalf("drawn %d segments, want 1", len(s.lines))
	}
	if !pointNear(s.lines[0].from, Point{0, 0}) || !pointNear(s.lines[0].to, Point{10, 0}) {
		t.Errorf("root segment = %v -> %v, want (0,0) -> (10,0)", s.lines[0].from, s.lines[0].to)
	}

	pending := g.Pending()
	if len(pending) != 2 {
		t.Fatalf("staged %d tasks, want 2", len(pending))
	}
	for i, task := range pending {
		if !pointNear(task.Branch.Start, Point{10, 0}) {
			t.Errorf("task %d start = %v, want (10,0)", i, task.Branch.Start)
		}
		if task.Depth != 1 {
			t.Errorf("task %d depth = %d, want 1", i, task.Depth)
		}
		if task.Branch.Length != 10 {
			t.Errorf("task %d length = %v, want 10 for a 0.5 draw", i, task.Branch.Length)
		}
	}
	if math.Abs(pending[0].Branch.Theta+0.1) > eps || math.Abs(pending[1].Branch.Theta-0.1) > eps {
		t.Errorf("thetas = %v, %v, want -0.1, +0.1", pending[0].Branch.Theta, pending[1].Branch.Theta)
	}
	if g.State() != StateGrowing || !g.Running() {
		t.Errorf("state = %v running = %v, want growing/true", g.State(), g.Running())
	}
}

func TestInitRootOutOfBoundsStagesNothing(t *testing.T) {
	p := Params{StartBranch: Branch{Point{0, 0}, 1000, 0}, MaxForks: 4, Speed: 1}
	g, s := newTestGrower(500, 500, p, NewSequenceSource(0.1))

	g.Init()

	if len(s.lines) != 1 {
		t.Errorf("drawn %d segments, want 1", len(s.lines))
	}
	if g.PendingCount() != 0 {
		t.Errorf("staged %d tasks, want 0", g.PendingCount())
	}
}

func TestInitWithoutSurfaceIsNoop(t *testing.T) {
	g := NewGrower(500, 500, WithRandom(NewSequenceSource(0.5)))
	g.Init()

	if g.State() != StateIdle {
		t.Errorf("state = %v, want idle", g.State())
	}
	if g.PendingCount() != 0 || g.Running() {
		t.Error("Init without a surface should not stage or run")
	}
	g.ClearCanvas() // must not panic
}

func TestChildLengthAndAngleRanges(t *testing.T) {
	p := Params{StartBranch: Branch{Point{250, 250}, 10, 1}, MaxForks: 3, Speed: 1}
	tests := []struct {
		name            string
		r               float64
		wantLen, wantDT float64
	}{
		{"low draw", 0, 9, 0},
		{"mid draw", 0.5, 10, 0.1},
		{"high draw", 0.999, 10.998, 0.1998},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGrower(500, 500, p, NewSequenceSource(tt.r))
			g.Init()
			pending := g.Pending()
			if len(pending) != 2 {
				t.Fatalf("staged %d, want 2", len(pending))
			}
			for _, task := range pending {
				if math.Abs(task.Branch.Length-tt.wantLen) > 1e-9 {
					t.Errorf("length = %v, want %v", task.Branch.Length, tt.wantLen)
				}
			}
			if d := 1 - pending[0].Branch.Theta; math.Abs(d-tt.wantDT) > 1e-9 {
				t.Errorf("left offset = %v, want %v", d, tt.wantDT)
			}
			if d := pending[1].Branch.Theta - 1; math.Abs(d-tt.wantDT) > 1e-9 {
				t.Errorf("right offset = %v, want %v", d, tt.wantDT)
			}
		})
	}
}

func TestStepBelowMaxForksAlwaysStagesTwo(t *testing.T) {
	const maxForks = 5
	p := Params{StartBranch: Branch{Point{250, 250}, 1, 0}, MaxForks: maxForks, Speed: 1}
	// 0.99 would fail every coin flip if one were consulted.
	g, _ := newTestGrower(500, 500, p, NewSequenceSource(0.99))

	for depth := 0; depth < maxForks; depth++ {
		before := g.PendingCount()
		g.Step(Branch{Point{250, 250}, 2, 0.3}, depth)
		if got := g.PendingCount() - before; got != 2 {
			t.Errorf("depth %d staged %d, want 2", depth, got)
		}
	}
}

func TestStepPastMaxForksFlipsCoin(t *testing.T) {
	p := Params{StartBranch: Branch{Point{250, 250}, 1, 0}, MaxForks: 2, Speed: 1}
	b := Branch{Point{250, 250}, 2, 0}

	g, _ := newTestGrower(500, 500, p, NewSequenceSource(0.99))
	g.Step(b, 2)
	if g.PendingCount() != 0 {
		t.Errorf("failed coins staged %d, want 0", g.PendingCount())
	}

	rng := NewSequenceSource(0.1)
	g, _ = newTestGrower(500, 500, p, rng)
	g.Step(b, 2)
	if g.PendingCount() != 2 {
		t.Errorf("won coins staged %d, want 2", g.PendingCount())
	}
	// coin, length, angle for each of two candidates
	if rng.Drawn() != 6 {
		t.Errorf("drew %d randoms, want 6", rng.Drawn())
	}

	// left fails, right wins
	g, _ = newTestGrower(500, 500, p, NewSequenceSource(0.7, 0.2, 0.5, 0.5))
	g.Step(b, 3)
	pending := g.Pending()
	if len(pending) != 1 {
		t.Fatalf("staged %d, want 1", len(pending))
	}
	if pending[0].Branch.Theta <= 0 {
		t.Errorf("surviving child theta = %v, want the right-turning one", pending[0].Branch.Theta)
	}
	if pending[0].Depth != 4 {
		t.Errorf("depth = %d, want 4", pending[0].Depth)
	}
}

func TestStopDrawingResetsQueueAndCounter(t *testing.T) {
	p := Params{StartBranch: Branch{Point{250, 250}, 5, 0}, MaxForks: 6, Speed: 2}
	g, _ := newTestGrower(500, 500, p, NewRandom(7))
	g.Init()
	for range 11 {
		g.Tick()
	}
	if g.FrameCount() != 11 {
		t.Fatalf("FrameCount = %d, want 11", g.FrameCount())
	}

	g.StopDrawing()

	if g.PendingCount() != 0 {
		t.Errorf("PendingCount = %d, want 0", g.PendingCount())
	}
	if g.FrameCount() != 0 {
		t.Errorf("FrameCount = %d, want 0", g.FrameCount())
	}
	if g.State() != StateStopped || g.Running() {
		t.Errorf("state = %v running = %v, want stopped/false", g.State(), g.Running())
	}

	// Stopping an idle grower is harmless too.
	idle := NewGrower(10, 10)
	idle.StopDrawing()
	if idle.PendingCount() != 0 || idle.FrameCount() != 0 {
		t.Error("idle StopDrawing left state behind")
	}
}

func TestStopDrawingKeepsPixels(t *testing.T) {
	g, s := newTestGrower(500, 500, DefaultParams(), NewSequenceSource(0.5))
	g.Init()
	g.StopDrawing()
	if len(s.lines) != 1 || s.clears != 0 {
		t.Errorf("lines = %d clears = %d, want 1/0", len(s.lines), s.clears)
	}
}

func TestClearCanvasLeavesState(t *testing.T) {
	g, s := newTestGrower(500, 500, DefaultParams(), NewSequenceSource(0.5))
	g.Init()
	pending := g.PendingCount()

	g.ClearCanvas()
	g.ClearCanvas()

	if len(s.lines) != 0 {
		t.Errorf("lines after clear = %d", len(s.lines))
	}
	if g.PendingCount() != pending || g.State() != StateGrowing {
		t.Error("ClearCanvas changed engine state")
	}
}

func TestRestartAfterStop(t *testing.T) {
	g, s := newTestGrower(500, 500, DefaultParams(), NewSequenceSource(0.5))
	g.Init()
	g.StopDrawing()

	next := DefaultParams()
	next.StartBranch.Start = Point{100, 100}
	g.SetParams(next)
	g.ClearCanvas()
	g.Init()

	if g.State() != StateGrowing || !g.Running() {
		t.Errorf("state = %v, want growing", g.State())
	}
	if len(s.lines) != 1 || !pointNear(s.lines[0].from, Point{100, 100}) {
		t.Errorf("restart drew %v", s.lines)
	}
	if g.DrawnCount() != 1 {
		t.Errorf("DrawnCount = %d, want 1", g.DrawnCount())
	}
}

func TestInitWithoutStopInterleaves(t *testing.T) {
	p := Params{StartBranch: Branch{Point{250, 250}, 5, 0}, MaxForks: 3, Speed: 1}
	g, _ := newTestGrower(500, 500, p, NewSequenceSource(0.5))
	g.Init()
	g.Init()
	if g.PendingCount() != 4 {
		t.Errorf("PendingCount = %d, want 4 from two roots", g.PendingCount())
	}
}

func TestSetParamsAppliesOnNextInit(t *testing.T) {
	p := Params{StartBranch: Branch{Point{250, 250}, 5, 0}, MaxForks: 3, Speed: 2}
	g, _ := newTestGrower(500, 500, p, NewSequenceSource(0.5))
	g.Init()

	changed := p
	changed.Speed = 1
	g.SetParams(changed)

	g.Tick()
	if g.LastFrame().Frame != 0 {
		t.Error("speed change leaked into the running growth")
	}
	if g.Params().Speed != 1 {
		t.Errorf("Params().Speed = %d, want 1", g.Params().Speed)
	}
}

func TestSetParamsClampsSpeed(t *testing.T) {
	g := NewGrower(100, 100)
	g.SetParams(Params{MaxForks: 0, Speed: 0})
	if p := g.Params(); p.Speed != 1 || p.MaxForks != 1 {
		t.Errorf("Params = %+v, want clamped", p)
	}
}

func TestInitUsesLineColor(t *testing.T) {
	p := DefaultParams()
	p.LineColor = "#ff0000"
	g, s := newTestGrower(500, 500, p, NewSequenceSource(0.5))
	g.Init()
	if s.lines[0].color != (Color{1, 0, 0, 1}) {
		t.Errorf("color = %+v, want red", s.lines[0].color)
	}

	p.LineColor = "chartreuse-ish"
	g, s = newTestGrower(500, 500, p, NewSequenceSource(0.5))
	g.Init()
	if want := MustParseColor(DefaultLineColor); s.lines[0].color != want {
		t.Errorf("bad color = %+v, want default %+v", s.lines[0].color, want)
	}
}

func TestDetachSurfaceSilencesDrawing(t *testing.T) {
	g, s := newTestGrower(500, 500, DefaultParams(), NewSequenceSource(0.5))
	g.Init()
	g.DetachSurface()
	if g.Surface() != nil {
		t.Fatal("surface still attached")
	}

	g.Frame()
	g.ClearCanvas()
	if len(s.lines) != 1 {
		t.Errorf("detached grower drew: %d lines", len(s.lines))
	}
}
