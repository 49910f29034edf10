package sapling

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth      = 260
	panelLineHeight = 16 // ebitenutil debug font glyph height
	panelPadding    = 4
)

// panelImage is the offscreen buffer the panel renders its rows into.
type panelImage struct {
	img *ebiten.Image
}

func (pi *panelImage) ensure(w, h int) *ebiten.Image {
	if pi.img != nil {
		b := pi.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return pi.img
		}
		pi.img.Deallocate()
	}
	pi.img = ebiten.NewImage(w, h)
	return pi.img
}

// Draw renders the panel onto dst with its top-left corner at (x, y).
func (p *Panel) Draw(dst *ebiten.Image, x, y float64) {
	lines := p.Lines()
	h := len(lines)*panelLineHeight + 2*panelPadding
	img := p.image.ensure(panelWidth, h)

	img.Clear()
	img.Fill(color.RGBA{0, 0, 0, 160})

	rowY := func(f Field) float32 {
		return float32(panelPadding + int(f)*panelLineHeight)
	}
	vector.DrawFilledRect(img, 0, rowY(p.selected), panelWidth, panelLineHeight,
		color.RGBA{255, 255, 255, 40}, false)
	if row, alpha, ok := p.Highlight(); ok {
		a := uint8(clamp01(alpha) * 120)
		vector.DrawFilledRect(img, 0, rowY(row), panelWidth, panelLineHeight,
			color.RGBA{a / 2, a, a / 2, a}, false)
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(img, line, panelPadding, panelPadding+i*panelLineHeight)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, &op)
}
