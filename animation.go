package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightDuration is how long a committed panel row stays lit, in seconds.
const highlightDuration = 0.6

// fade animates a single value from 1 down to 0. Callers advance it with
// Update each frame; there is no global animation manager.
type fade struct {
	tween *gween.Tween
	Value float64
	Done  bool
}

func newFade(duration float32) *fade {
	return newTween(1, 0, duration, ease.OutQuad)
}

func newTween(from, to float64, duration float32, fn ease.TweenFunc) *fade {
	return &fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		Value: from,
	}
}

// Update advances the tween by dt seconds.
func (f *fade) Update(dt float32) {
	if f.Done {
		return
	}
	v, finished := f.tween.Update(dt)
	f.Value = float64(v)
	f.Done = finished
}
