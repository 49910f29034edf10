package sapling

import (
	"context"
	"log/slog"
	"time"
)

// FrameStats describes the most recent drained frame.
type FrameStats struct {
	Frame    int // tick on which the drain happened
	Executed int // tasks run this frame
	Kept     int // tasks left queued for a later frame
	Staged   int // tasks queued by the executed ones
	Drawn    int // segments stroked
	Duration time.Duration
}

// Pending returns the queue length left after the frame.
func (s FrameStats) Pending() int {
	return s.Kept + s.Staged
}

// LastFrame returns statistics for the most recent Frame call. Duration is
// only measured when debug logging is enabled or a frame hook is set.
func (g *Grower) LastFrame() FrameStats {
	return g.last
}

func (g *Grower) debugEnabled() bool {
	return g.logger().Enabled(context.Background(), slog.LevelDebug)
}

// debugLog writes per-frame drain statistics at debug level.
func (g *Grower) debugLog(stats FrameStats) {
	g.logger().Debug("frame",
		"tick", stats.Frame,
		"executed", stats.Executed,
		"kept", stats.Kept,
		"staged", stats.Staged,
		"drawn", stats.Drawn,
		"took", stats.Duration)
}
