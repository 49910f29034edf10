package sapling

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a panel script.
type scriptStep struct {
	Action string   `json:"action"`
	Field  string   `json:"field,omitempty"`
	Steps  float64  `json:"steps,omitempty"`
	Value  *float64 `json:"value,omitempty"`
	Color  string   `json:"color,omitempty"`
	Name   string   `json:"name,omitempty"`
	Label  string   `json:"label,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Key    string   `json:"key,omitempty"`
	Shift  bool     `json:"shift,omitempty"`
}

type panelScriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// PanelScript replays panel edits across frames, one step per tick, for
// demos and unattended captures. Attach it through RunConfig.Script.
//
// Actions: select (field), adjust (steps), set (value or color), commit,
// render, preset (name), export (label), pause, wait (frames), key (key,
// shift). A key step queues a synthetic press that the same Update applies
// after the step, in place of keyboard input.
type PanelScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadPanelScript parses a JSON panel script.
func LoadPanelScript(jsonData []byte) (*PanelScript, error) {
	var file panelScriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse panel script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse panel script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "select", "adjust", "set", "commit", "render", "preset", "export", "pause", "wait":
		case "key":
			if _, err := ParseKey(st.Key); err != nil {
				return nil, fmt.Errorf("parse panel script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse panel script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &PanelScript{steps: file.Steps}, nil
}

// Done reports whether every step has run.
func (r *PanelScript) Done() bool {
	return r.done
}

// step runs at most one script action. Called from App.Update.
func (r *PanelScript) step(a *App) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	p := a.panel
	switch st.Action {
	case "select":
		if f, ok := p.FieldByKey(st.Field); ok {
			p.Select(f)
		} else {
			Logger().Warn("panel script: unknown field", "field", st.Field)
		}
	case "adjust":
		p.Adjust(st.Steps)
	case "set":
		if st.Color != "" {
			if err := p.SetColor(st.Color); err != nil {
				Logger().Warn("panel script: bad color", "color", st.Color, "error", err)
			}
		} else if st.Value != nil {
			p.SetValue(p.Selected(), *st.Value)
		}
	case "commit":
		p.Commit()
	case "render":
		p.TriggerRender()
	case "preset":
		name := st.Name
		if name == "" {
			name = PresetNeuroSynapse
		}
		_ = p.ApplyPreset(name)
	case "export":
		a.Export(st.Label)
	case "pause":
		a.paused = !a.paused
	case "key":
		k, _ := ParseKey(st.Key)
		a.InjectKey(k, st.Shift)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
