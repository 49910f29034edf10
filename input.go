package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// keyRepeatDelay is the number of ticks a key is held before it repeats.
	keyRepeatDelay = 20
	// keyRepeatInterval is the number of ticks between repeats.
	keyRepeatInterval = 4
	// shiftMultiplier scales adjustments while Shift is held.
	shiftMultiplier = 10
)

// keyInput is one tick's worth of panel keyboard actions.
type keyInput struct {
	up, down    bool
	left, right bool
	shift       bool
	enter       bool
	render      bool
	preset      bool
	export      bool
	pause       bool
}

// readKeys samples the keyboard for the current tick.
func readKeys() keyInput {
	return keyInput{
		up:     repeating(ebiten.KeyArrowUp),
		down:   repeating(ebiten.KeyArrowDown),
		left:   repeating(ebiten.KeyArrowLeft),
		right:  repeating(ebiten.KeyArrowRight),
		shift:  ebiten.IsKeyPressed(ebiten.KeyShift),
		enter:  inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		render: inpututil.IsKeyJustPressed(ebiten.KeyR),
		preset: inpututil.IsKeyJustPressed(ebiten.KeyN),
		export: inpututil.IsKeyJustPressed(ebiten.KeyP),
		pause:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// repeating reports a key press on the first tick and then at a fixed
// interval while the key stays down.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// applyKeys maps keyboard actions onto the panel and app.
func (a *App) applyKeys(k keyInput) {
	switch {
	case k.up:
		a.panel.Prev()
	case k.down:
		a.panel.Next()
	}

	step := 1.0
	if k.shift {
		step = shiftMultiplier
	}
	switch {
	case k.left:
		a.panel.Adjust(-step)
	case k.right:
		a.panel.Adjust(step)
	}

	if k.enter {
		a.panel.Commit()
	}
	if k.render {
		a.panel.TriggerRender()
	}
	if k.preset {
		_ = a.panel.ApplyPreset(PresetNeuroSynapse)
	}
	if k.export {
		a.Export("tree")
	}
	if k.pause {
		a.paused = !a.paused
		Logger().Info("pause toggled", "paused", a.paused)
	}
}
