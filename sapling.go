package sapling

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a surface.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is fully opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Point is a 2D coordinate. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
// Used by the panel to bound editable fields.
type Range struct {
	Min, Max float64
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// State is the lifecycle of a Grower.
type State uint8

const (
	StateIdle    State = iota // constructed, nothing grown yet
	StateGrowing              // Init has seeded a root branch
	StateStopped              // StopDrawing has emptied the queue
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGrowing:
		return "growing"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
