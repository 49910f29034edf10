package sapling

// Surface is a drawing target a Grower strokes branches onto. Implementations
// keep their pixels between frames; a Grower never redraws old branches.
type Surface interface {
	// StrokeLine draws a hairline segment from one point to another.
	StrokeLine(from, to Point, c Color)
	// Clear erases every pixel to transparent.
	Clear()
}
