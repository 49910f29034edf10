package sapling

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// RasterSurface is a CPU canvas for rendering without a window. Strokes go
// through the gg software rasterizer.
type RasterSurface struct {
	dc *gg.Context
}

// NewRasterSurface creates a transparent w×h raster canvas with 1px strokes.
func NewRasterSurface(w, h int) *RasterSurface {
	dc := gg.NewContext(w, h)
	dc.SetLineWidth(1)
	return &RasterSurface{dc: dc}
}

// SetLineWidth changes the stroke width used for later segments.
func (r *RasterSurface) SetLineWidth(w float64) {
	if w <= 0 {
		w = 1
	}
	r.dc.SetLineWidth(w)
}

// StrokeLine draws a segment in the given color.
func (r *RasterSurface) StrokeLine(from, to Point, c Color) {
	r.dc.SetStrokeBrush(gg.Solid(c.toGG()))
	r.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	if err := r.dc.Stroke(); err != nil {
		Logger().Warn("raster stroke failed", "error", err)
	}
}

// Clear resets every pixel to transparent.
func (r *RasterSurface) Clear() {
	r.dc.Clear()
}

// Fill paints every pixel with c, replacing what was drawn.
func (r *RasterSurface) Fill(c Color) {
	r.dc.ClearWithColor(c.toGG())
}

// Width returns the canvas width in pixels.
func (r *RasterSurface) Width() int {
	return r.dc.Width()
}

// Height returns the canvas height in pixels.
func (r *RasterSurface) Height() int {
	return r.dc.Height()
}

// Image returns a snapshot of the current pixels.
func (r *RasterSurface) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current pixels to path.
func (r *RasterSurface) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the rasterizer state.
func (r *RasterSurface) Close() error {
	return r.dc.Close()
}
