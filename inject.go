package sapling

import (
	"fmt"
	"strings"
)

// Key names a panel shortcut that can be injected without a keyboard.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyRender
	KeyPreset
	KeyExport
	KeyPause
)

var keyNames = map[string]Key{
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"enter":  KeyEnter,
	"render": KeyRender,
	"preset": KeyPreset,
	"export": KeyExport,
	"pause":  KeyPause,
}

// ParseKey maps a key name such as "enter" or "left" to a Key.
func ParseKey(name string) (Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// InjectKey queues a synthetic key press. Each queued press is consumed on
// one Update in place of real keyboard input. Shift scales adjustments the
// same way the real Shift key does.
func (a *App) InjectKey(k Key, shift bool) {
	in := keyInput{shift: shift}
	switch k {
	case KeyUp:
		in.up = true
	case KeyDown:
		in.down = true
	case KeyLeft:
		in.left = true
	case KeyRight:
		in.right = true
	case KeyEnter:
		in.enter = true
	case KeyRender:
		in.render = true
	case KeyPreset:
		in.preset = true
	case KeyExport:
		in.export = true
	case KeyPause:
		in.pause = true
	}
	a.injectQueue = append(a.injectQueue, in)
}

// InjectKeys queues several presses, one per frame.
func (a *App) InjectKeys(keys ...Key) {
	for _, k := range keys {
		a.InjectKey(k, false)
	}
}

// processInjectedInput pops one queued press and applies it. Returns true if
// a press was consumed, in which case real keyboard input is skipped.
func (a *App) processInjectedInput() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	in := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	a.applyKeys(in)
	return true
}
