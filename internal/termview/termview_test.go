package termview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sapling"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 0, '.'},
		{10, 0, '-'},
		{-10, 1, '-'},
		{0, 5, '|'},
		{1, -6, '|'},
		{4, 4, '\\'},
		{-4, -4, '\\'},
		{4, -4, '/'},
		{-3, 3, '/'},
	}
	for _, tt := range tests {
		if got := glyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("glyph(%d, %d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestStrokeLineHorizontal(t *testing.T) {
	screen := newTestScreen(t)
	s := NewSurface(screen, 6, 12)

	s.StrokeLine(sapling.Point{X: 3, Y: 6}, sapling.Point{X: 57, Y: 6}, sapling.ColorWhite)

	for x := 0; x <= 9; x++ {
		if r := runeAt(screen, x, 0); r != '-' {
			t.Errorf("cell (%d,0) = %q, want '-'", x, r)
		}
	}
	if r := runeAt(screen, 10, 0); r == '-' {
		t.Error("line overran its end cell")
	}
	if r := runeAt(screen, 5, 1); r == '-' {
		t.Error("line leaked into the next row")
	}
}

func TestStrokeLineDiagonal(t *testing.T) {
	screen := newTestScreen(t)
	s := NewSurface(screen, 1, 1)

	s.StrokeLine(sapling.Point{X: 0.5, Y: 0.5}, sapling.Point{X: 5.5, Y: 5.5}, sapling.ColorWhite)
	for i := 0; i <= 5; i++ {
		if r := runeAt(screen, i, i); r != '\\' {
			t.Errorf("cell (%d,%d) = %q, want '\\\\'", i, i, r)
		}
	}
}

func TestStrokeLineOffScreen(t *testing.T) {
	screen := newTestScreen(t)
	s := NewSurface(screen, 6, 12)
	s.StrokeLine(sapling.Point{X: -500, Y: -500}, sapling.Point{X: 5000, Y: 5000}, sapling.ColorWhite)
	s.StrokeLine(sapling.Point{X: -50, Y: 3}, sapling.Point{X: -10, Y: 3}, sapling.ColorWhite)
}

func TestClear(t *testing.T) {
	screen := newTestScreen(t)
	s := NewSurface(screen, 6, 12)
	s.StrokeLine(sapling.Point{X: 3, Y: 6}, sapling.Point{X: 57, Y: 6}, sapling.ColorWhite)
	s.Clear()
	s.Clear()
	if r := runeAt(screen, 5, 0); r == '-' {
		t.Error("Clear left the line behind")
	}
}

func TestStyleBlendsAlpha(t *testing.T) {
	fg, bg, _ := style(sapling.Color{R: 1, G: 1, B: 1, A: 0.5}).Decompose()
	if fg != tcell.NewRGBColor(128, 128, 128) {
		t.Errorf("fg = %v, want mid gray", fg)
	}
	if bg != tcell.ColorBlack {
		t.Errorf("bg = %v, want black", bg)
	}
}

func TestCanvasSize(t *testing.T) {
	screen := newTestScreen(t)
	s := NewSurface(screen, 0, 0)
	w, h := s.CanvasSize()
	if w != 40*DefaultCellWidth || h != 20*DefaultCellHeight {
		t.Errorf("CanvasSize = %vx%v", w, h)
	}
}

func TestViewHandle(t *testing.T) {
	screen := newTestScreen(t)
	v, err := newView(screen, Options{Params: sapling.DefaultParams(), Preset: sapling.PresetNeuroSynapse, Seed: 2})
	if err != nil {
		t.Fatal(err)
	}
	v.grower.Init()

	if !v.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !v.paused {
		t.Error("space should pause")
	}
	frames := v.grower.FrameCount()
	v.tick()
	if v.grower.FrameCount() != frames {
		t.Error("paused view ticked")
	}

	v.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.grower.State() != sapling.StateGrowing || v.grower.DrawnCount() != 1 {
		t.Errorf("regrow: state %v drawn %d", v.grower.State(), v.grower.DrawnCount())
	}

	screen.SetSize(60, 30)
	v.handle(tcell.NewEventResize(60, 30))
	if w, h := v.grower.Size(); w != 60*DefaultCellWidth || h != 30*DefaultCellHeight {
		t.Errorf("grower size after resize = %vx%v", w, h)
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	} {
		if v.handle(ev) {
			t.Errorf("key %v should quit", ev.Name())
		}
	}
}

func TestNewViewPresetKeepsParams(t *testing.T) {
	screen := newTestScreen(t)
	p := sapling.DefaultParams()
	p.Speed = 9
	p.LineColor = "#f00"
	v, err := newView(screen, Options{Params: p, Preset: sapling.PresetNeuroSynapse})
	if err != nil {
		t.Fatal(err)
	}

	got := v.grower.Params()
	if got.Speed != 9 || got.LineColor != "#f00" {
		t.Errorf("params = %+v, want speed 9 and color #f00 kept", got)
	}
	want := sapling.Point{X: 40 * DefaultCellWidth / 2, Y: 20 * DefaultCellHeight / 2}
	if got.StartBranch.Start != want {
		t.Errorf("start = %v, want screen center %v", got.StartBranch.Start, want)
	}
	if got.StartBranch.Length != p.StartBranch.Length {
		t.Errorf("length = %v, want %v", got.StartBranch.Length, p.StartBranch.Length)
	}
}

func TestNewViewUnknownPreset(t *testing.T) {
	screen := newTestScreen(t)
	_, err := newView(screen, Options{Preset: "bonsai"})
	if !errors.Is(err, sapling.ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newTestScreen(t)
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), screen, Options{
			Params:       sapling.DefaultParams(),
			Seed:         1,
			TickInterval: time.Millisecond,
		})
	}()

	time.Sleep(20 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := Run(ctx, screen, Options{Params: sapling.DefaultParams(), Seed: 1}); err != nil {
		t.Fatal(err)
	}
}
