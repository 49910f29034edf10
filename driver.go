package sapling

import "time"

// executeChance is the probability a queued task runs in a given frame
// rather than waiting for a later one.
const executeChance = 0.6

// Tick advances the animation by one display refresh. The counter increases
// on every call and a frame of work is drained on every Speed-th tick. Tick
// returns false once the Grower is not running, which is the caller's signal
// to stop scheduling it.
func (g *Grower) Tick() bool {
	if !g.running {
		return false
	}
	g.frames++
	if g.frames%g.active.Speed == 0 {
		g.Frame()
	}
	return true
}

// Frame drains one round of the queue. Each queued task independently runs
// now or stays queued. Tasks staged while running this frame are only
// eligible on later frames.
func (g *Grower) Frame() {
	var t0 time.Time
	debug := g.debugEnabled()
	timed := debug || g.onFrame != nil
	if timed {
		t0 = time.Now()
	}

	g.runBuf = g.runBuf[:0]
	kept := g.pending[:0]
	for _, t := range g.pending {
		if g.rng.Float64() > 1-executeChance {
			g.runBuf = append(g.runBuf, t)
		} else {
			kept = append(kept, t)
		}
	}
	clear(g.pending[len(kept):])
	g.pending = kept

	drawnBefore := g.drawn
	for _, t := range g.runBuf {
		g.Step(t.Branch, t.Depth)
	}

	g.last = FrameStats{
		Frame:    g.frames,
		Executed: len(g.runBuf),
		Kept:     len(kept),
		Staged:   len(g.pending) - len(kept),
		Drawn:    g.drawn - drawnBefore,
	}
	if timed {
		g.last.Duration = time.Since(t0)
	}
	if debug {
		g.debugLog(g.last)
	}
	if g.onFrame != nil {
		g.onFrame(g.last)
	}
}

// Settled reports whether the tree is running with nothing left to grow.
func (g *Grower) Settled() bool {
	return g.running && len(g.pending) == 0
}
