package sapling

import (
	"context"
	"fmt"
)

// RenderOptions configures a windowless render.
type RenderOptions struct {
	Width, Height int
	Params        Params
	// Seed feeds the random source. Zero picks a random seed.
	Seed uint64
	// MaxTicks caps the simulated refresh ticks. Zero means no cap.
	MaxTicks int
	// Background, when set, fills the canvas before the tree is drawn.
	Background *Color
	LineWidth  float64
	// Random overrides Seed when set.
	Random RandomSource
	// FrameHook, when set, receives the statistics of every drained frame.
	FrameHook func(FrameStats)
}

// RenderResult summarizes a windowless render.
type RenderResult struct {
	Ticks    int
	Segments int
	Settled  bool
}

// Render grows one tree on a RasterSurface, ticking as a display would
// until the tree settles, MaxTicks is reached, or ctx is done. The caller
// owns the returned surface.
func Render(ctx context.Context, opts RenderOptions) (*RasterSurface, RenderResult, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, RenderResult{}, fmt.Errorf("render: invalid size %dx%d", opts.Width, opts.Height)
	}
	rng := opts.Random
	if rng == nil {
		rng = NewRandom(opts.Seed)
	}

	surface := NewRasterSurface(opts.Width, opts.Height)
	surface.SetLineWidth(opts.LineWidth)
	if opts.Background != nil {
		surface.Fill(*opts.Background)
	}

	g := NewGrower(float64(opts.Width), float64(opts.Height),
		WithParams(opts.Params), WithRandom(rng), WithFrameHook(opts.FrameHook))
	g.AttachSurface(surface)
	g.Init()

	var res RenderResult
	for opts.MaxTicks <= 0 || res.Ticks < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			res.Segments = g.DrawnCount()
			return surface, res, fmt.Errorf("render: %w", err)
		}
		if g.Settled() {
			res.Settled = true
			break
		}
		g.Tick()
		res.Ticks++
	}
	if !res.Settled {
		res.Settled = g.Settled()
	}
	res.Segments = g.DrawnCount()
	g.StopDrawing()

	Logger().Info("headless render done",
		"ticks", res.Ticks, "segments", res.Segments, "settled", res.Settled)
	return surface, res, nil
}
