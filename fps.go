package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusRefresh is how often the status overlay redraws, in seconds.
const statusRefresh = 0.25

// statusWidget shows FPS, TPS and growth counters in a corner overlay.
type statusWidget struct {
	img        *ebiten.Image
	lastUpdate float64
	text       string
}

func newStatusWidget() *statusWidget {
	// 180x80 fits five debug-font lines.
	return &statusWidget{img: ebiten.NewImage(180, 80)}
}

// update refreshes the overlay text every statusRefresh seconds.
func (w *statusWidget) update(dt float64, g *Grower, paused bool) {
	w.lastUpdate += dt
	if w.lastUpdate < statusRefresh && w.text != "" {
		return
	}
	w.lastUpdate = 0
	w.text = statusText(ebiten.ActualFPS(), ebiten.ActualTPS(), g, paused)

	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, w.text)
}

func (w *statusWidget) draw(dst *ebiten.Image, x, y float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	dst.DrawImage(w.img, &op)
}

func statusText(fps, tps float64, g *Grower, paused bool) string {
	state := g.State().String()
	if paused {
		state += " (paused)"
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nstate: %s\npending: %d\ndrawn: %d\ntick: %d",
		fps, tps, state, g.PendingCount(), g.DrawnCount(), g.FrameCount())
}
