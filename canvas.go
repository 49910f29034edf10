package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CanvasTexture is a persistent offscreen canvas backed by an ebiten image.
// Branches accumulate on it across frames; the App draws it to the screen
// every frame. It is owned by the caller and never recycled.
type CanvasTexture struct {
	image *ebiten.Image
	w, h  int

	// LineWidth is the stroke width in pixels. Zero means 1.
	LineWidth float32
	// Antialias smooths stroked segments.
	Antialias bool
}

// NewCanvasTexture creates a transparent canvas of the given size.
func NewCanvasTexture(w, h int) *CanvasTexture {
	return &CanvasTexture{
		image:     ebiten.NewImage(w, h),
		w:         w,
		h:         h,
		Antialias: true,
	}
}

// Image returns the underlying *ebiten.Image.
func (ct *CanvasTexture) Image() *ebiten.Image {
	return ct.image
}

// Width returns the canvas width in pixels.
func (ct *CanvasTexture) Width() int {
	return ct.w
}

// Height returns the canvas height in pixels.
func (ct *CanvasTexture) Height() int {
	return ct.h
}

// StrokeLine draws a segment in the given color. A disposed canvas ignores it.
func (ct *CanvasTexture) StrokeLine(from, to Point, c Color) {
	if ct.image == nil {
		return
	}
	w := ct.LineWidth
	if w <= 0 {
		w = 1
	}
	vector.StrokeLine(ct.image,
		float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		w, c.toRGBA(), ct.Antialias)
}

// Clear fills the canvas with transparent black.
func (ct *CanvasTexture) Clear() {
	if ct.image == nil {
		return
	}
	ct.image.Clear()
}

// Fill fills the entire canvas with the given color.
func (ct *CanvasTexture) Fill(c Color) {
	if ct.image == nil {
		return
	}
	ct.image.Fill(c.toRGBA())
}

// Resize deallocates the old image and creates a new, empty one.
func (ct *CanvasTexture) Resize(width, height int) {
	if ct.image != nil {
		ct.image.Deallocate()
	}
	ct.image = ebiten.NewImage(width, height)
	ct.w = width
	ct.h = height
}

// Dispose deallocates the underlying image. Drawing afterwards is a no-op.
func (ct *CanvasTexture) Dispose() {
	if ct.image != nil {
		ct.image.Deallocate()
		ct.image = nil
	}
}
