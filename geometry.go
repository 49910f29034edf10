package sapling

import "math"

// Branch is a directed line segment. Its end point is derived from the other
// fields and never stored.
type Branch struct {
	Start  Point   `yaml:"start"`
	Length float64 `yaml:"length"`
	Theta  float64 `yaml:"theta"` // radians, clockwise from +X because Y grows downward
}

// Endpoint returns the far end of b.
func Endpoint(b Branch) Point {
	return Point{
		X: b.Start.X + b.Length*math.Cos(b.Theta),
		Y: b.Start.Y + b.Length*math.Sin(b.Theta),
	}
}

// End is shorthand for Endpoint(b).
func (b Branch) End() Point {
	return Endpoint(b)
}

// IsOutsideCanvas reports whether p lies outside [0, width]×[0, height].
// Points on the boundary are inside.
func IsOutsideCanvas(p Point, width, height float64) bool {
	return !Rect{Width: width, Height: height}.Contains(p.X, p.Y)
}
