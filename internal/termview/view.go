package termview

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sapling"
)

// Options configures Run.
type Options struct {
	Params sapling.Params
	// Preset, when set, moves the start point of Params to where the named
	// preset puts it on this screen. Every other field of Params is kept.
	Preset string
	Seed   uint64
	// TickInterval is the simulated refresh period. Zero means 60 Hz.
	TickInterval time.Duration
	// CellWidth and CellHeight are the canvas units per cell.
	CellWidth, CellHeight float64
	// FrameHook, when set, receives the statistics of every drained frame.
	FrameHook func(sapling.FrameStats)
	Logger    *slog.Logger
}

// view owns the grower and its terminal surface for one Run.
type view struct {
	opts    Options
	screen  tcell.Screen
	surface *Surface
	grower  *sapling.Grower
	paused  bool
}

func newView(screen tcell.Screen, opts Options) (*view, error) {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second / 60
	}
	if opts.Logger == nil {
		opts.Logger = sapling.Logger()
	}
	v := &view{
		opts:    opts,
		screen:  screen,
		surface: NewSurface(screen, opts.CellWidth, opts.CellHeight),
	}
	w, h := v.surface.CanvasSize()
	if opts.Preset != "" {
		p, err := sapling.Preset(opts.Preset, w, h)
		if err != nil {
			return nil, err
		}
		v.opts.Params.StartBranch.Start = p.StartBranch.Start
	}
	v.grower = sapling.NewGrower(w, h,
		sapling.WithParams(v.opts.Params),
		sapling.WithRandom(sapling.NewRandom(opts.Seed)),
		sapling.WithFrameHook(opts.FrameHook),
		sapling.WithLogger(opts.Logger))
	v.grower.AttachSurface(v.surface)
	return v, nil
}

// regrow stops the current tree, wipes the screen and starts again.
func (v *view) regrow() {
	v.grower.StopDrawing()
	v.grower.ClearCanvas()
	v.grower.Init()
	v.screen.Show()
}

// handle applies one terminal event. It returns false when the user quits.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				v.regrow()
			case ' ':
				v.paused = !v.paused
			}
		}
	case *tcell.EventResize:
		w, h := v.surface.CanvasSize()
		v.grower.Resize(w, h)
		v.screen.Sync()
		v.regrow()
	}
	return true
}

// tick advances the tree by one refresh and flushes the screen.
func (v *view) tick() {
	if v.paused {
		return
	}
	if v.grower.Tick() {
		v.screen.Show()
	}
}

// Run grows a tree on screen until ctx is done or the user presses q, Esc
// or Ctrl-C. R regrows and Space pauses. The caller owns screen and must
// have initialized it.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	v, err := newView(screen, opts)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	screen.Clear()
	v.grower.Init()
	screen.Show()
	v.opts.Logger.Info("terminal view started", "seed", opts.Seed)

	ticker := time.NewTicker(v.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			v.tick()
		}
	}
}
