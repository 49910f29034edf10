package sapling

import "log/slog"

const (
	// continueChance is the probability a branch past MaxForks keeps growing
	// in a given direction.
	continueChance = 0.5
	// maxAngleJitter bounds the angle offset of a child branch, in radians.
	maxAngleJitter = 0.2
)

// Task is one staged branch waiting to be grown on a later frame.
type Task struct {
	Branch Branch
	Depth  int
}

// Grower owns one tree: its surface, its queue of staged branches, and the
// frame counter that gates draining. All methods must be called from the
// same goroutine, normally the ebiten update loop.
type Grower struct {
	width, height float64

	next   Params // applied on the next Init
	active Params // snapshot taken by Init
	color  Color

	surface Surface
	rng     RandomSource
	log     *slog.Logger

	onFrame func(FrameStats)

	state   State
	running bool
	pending []Task
	runBuf  []Task
	frames  int
	drawn   int
	last    FrameStats
}

// GrowerOption configures a Grower at construction.
type GrowerOption func(*Grower)

// WithRandom sets the random source used for every growth decision.
func WithRandom(r RandomSource) GrowerOption {
	return func(g *Grower) { g.rng = r }
}

// WithLogger overrides the package logger for this Grower.
func WithLogger(l *slog.Logger) GrowerOption {
	return func(g *Grower) { g.log = l }
}

// WithFrameHook registers fn to receive the statistics of every drained
// frame. Frames are timed when a hook is set.
func WithFrameHook(fn func(FrameStats)) GrowerOption {
	return func(g *Grower) { g.onFrame = fn }
}

// WithParams sets the initial bundle.
func WithParams(p Params) GrowerOption {
	return func(g *Grower) { g.next = p }
}

// NewGrower creates an idle Grower for a width×height canvas. It draws
// nothing until a surface is attached and Init is called.
func NewGrower(width, height float64, opts ...GrowerOption) *Grower {
	g := &Grower{
		width:  width,
		height: height,
		next:   DefaultParams(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRandom(0)
	}
	g.next = g.next.Normalize()
	g.active = g.next
	return g
}

func (g *Grower) logger() *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return Logger()
}

// AttachSurface sets the surface branches are drawn onto.
func (g *Grower) AttachSurface(s Surface) {
	g.surface = s
}

// DetachSurface drops the surface reference. Drawing becomes a no-op.
func (g *Grower) DetachSurface() {
	g.surface = nil
}

// Surface returns the attached surface, or nil.
func (g *Grower) Surface() Surface {
	return g.surface
}

// SetParams stores the bundle used by the next Init. A growth already in
// progress keeps its own snapshot.
func (g *Grower) SetParams(p Params) {
	g.next = p.Normalize()
}

// Params returns the bundle the next Init will use.
func (g *Grower) Params() Params {
	return g.next
}

// Resize changes the canvas bounds used for the out-of-canvas test.
func (g *Grower) Resize(width, height float64) {
	g.width, g.height = width, height
}

// Size returns the canvas bounds.
func (g *Grower) Size() (width, height float64) {
	return g.width, g.height
}

// Init snapshots the pending bundle, draws the root branch and stages its
// children. Without a surface it does nothing. Calling Init while a previous
// growth still has queued tasks interleaves the two; call StopDrawing first.
func (g *Grower) Init() {
	if g.surface == nil {
		return
	}
	g.active = g.next
	c, err := ParseColor(g.active.LineColor)
	if err != nil {
		g.logger().Warn("falling back to default line color", "color", g.active.LineColor, "error", err)
		c = MustParseColor(DefaultLineColor)
	}
	g.color = c
	g.state = StateGrowing
	g.running = true
	g.drawn = 0

	g.logger().Info("tree init",
		"x", g.active.StartBranch.Start.X,
		"y", g.active.StartBranch.Start.Y,
		"length", g.active.StartBranch.Length,
		"theta", g.active.StartBranch.Theta,
		"max_forks", g.active.MaxForks,
		"speed", g.active.Speed)

	g.Step(g.active.StartBranch, 0)
}

// Step draws b and, when its end lies on the canvas, stages up to two child
// branches one level deeper. Children are never drawn here.
func (g *Grower) Step(b Branch, depth int) {
	end := Endpoint(b)
	g.drawBranch(b.Start, end)

	if IsOutsideCanvas(end, g.width, g.height) {
		return
	}
	g.stage(b, end, depth, -1)
	g.stage(b, end, depth, +1)
}

// stage queues one child of parent turning in the given direction. Past
// MaxForks the child only survives a coin flip.
func (g *Grower) stage(parent Branch, end Point, depth int, dir float64) {
	if depth >= g.active.MaxForks && g.rng.Float64() >= continueChance {
		return
	}
	length := parent.Length + (g.rng.Float64()*2 - 1)
	theta := parent.Theta + dir*maxAngleJitter*g.rng.Float64()
	g.pending = append(g.pending, Task{
		Branch: Branch{Start: end, Length: length, Theta: theta},
		Depth:  depth + 1,
	})
}

func (g *Grower) drawBranch(from, to Point) {
	if g.surface == nil {
		return
	}
	g.surface.StrokeLine(from, to, g.color)
	g.drawn++
}

// ClearCanvas erases the surface. Queue and state are untouched.
func (g *Grower) ClearCanvas() {
	if g.surface == nil {
		return
	}
	g.surface.Clear()
}

// StopDrawing empties the queue, zeroes the frame counter and halts Tick.
// Pixels already drawn stay on the surface.
func (g *Grower) StopDrawing() {
	if g.state == StateGrowing {
		g.logger().Info("tree stop", "pending", len(g.pending), "drawn", g.drawn)
	}
	g.state = StateStopped
	g.running = false
	clear(g.pending)
	g.pending = g.pending[:0]
	g.frames = 0
}

// State returns the lifecycle state.
func (g *Grower) State() State {
	return g.state
}

// Running reports whether Tick is still advancing the tree.
func (g *Grower) Running() bool {
	return g.running
}

// Pending returns a copy of the staged tasks in queue order.
func (g *Grower) Pending() []Task {
	out := make([]Task, len(g.pending))
	copy(out, g.pending)
	return out
}

// PendingCount returns the number of staged tasks.
func (g *Grower) PendingCount() int {
	return len(g.pending)
}

// FrameCount returns the number of ticks counted since the last StopDrawing.
func (g *Grower) FrameCount() int {
	return g.frames
}

// DrawnCount returns the number of segments drawn since the last Init.
func (g *Grower) DrawnCount() int {
	return g.drawn
}
