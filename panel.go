package sapling

import (
	"fmt"
	"math"
)

// FieldKind selects how a panel row is edited.
type FieldKind uint8

const (
	FieldNumber FieldKind = iota // continuous value, adjusted in Step increments
	FieldInt                     // integer value, adjusted in whole Steps
	FieldColor                   // cycles through the panel palette
	FieldAction                  // activated with Commit, holds no value
)

// Field identifies a panel row.
type Field int

const (
	FieldStartX Field = iota
	FieldStartY
	FieldLength
	FieldAngle
	FieldMaxForks
	FieldSpeed
	FieldLineColor
	FieldRender
	FieldPreset
	fieldCount
)

// FieldSpec describes one editable row.
type FieldSpec struct {
	Key   string // stable identifier used by panel scripts
	Label string
	Kind  FieldKind
	Range Range
	Step  float64
}

// DefaultPalette is the set of line colors the color row cycles through.
var DefaultPalette = []string{
	"rgba(255,255,255,0.3)",
	"rgba(120,200,255,0.4)",
	"rgba(255,180,90,0.4)",
	"rgba(150,255,150,0.35)",
	"rgba(255,120,200,0.4)",
	"#fff5",
}

// Panel is an editable mirror of a Params bundle. It never draws on the
// tree; it reports edits through its callbacks and leaves the host to act.
//
// Edits are two-phase: Adjust changes the draft, Commit publishes it through
// OnChange. TriggerRender publishes the draft through OnRender.
type Panel struct {
	// OnChange receives a full snapshot after every committed edit.
	OnChange func(Params)
	// OnRender receives a snapshot when a re-render is requested.
	OnRender func(Params)

	draft         Params
	width, height float64
	fields        [fieldCount]FieldSpec
	palette       []string
	selected      Field
	dirty         bool

	highlight    *fade
	highlightRow Field
	image        panelImage
}

// NewPanel creates a panel mirroring p for a width×height canvas. The canvas
// size bounds the start point fields and positions presets.
func NewPanel(p Params, width, height float64) *Panel {
	pn := &Panel{
		draft:   p.Normalize(),
		width:   width,
		height:  height,
		palette: DefaultPalette,
	}
	pn.fields = [fieldCount]FieldSpec{
		FieldStartX:    {Key: "start_x", Label: "Start X", Kind: FieldNumber, Range: Range{0, width}, Step: 5},
		FieldStartY:    {Key: "start_y", Label: "Start Y", Kind: FieldNumber, Range: Range{0, height}, Step: 5},
		FieldLength:    {Key: "length", Label: "Length", Kind: FieldNumber, Range: Range{0, 100}, Step: 1},
		FieldAngle:     {Key: "angle", Label: "Angle", Kind: FieldNumber, Range: Range{0, 2 * math.Pi}, Step: math.Pi / 36},
		FieldMaxForks:  {Key: "max_forks", Label: "Max forks", Kind: FieldInt, Range: Range{1, 10}, Step: 1},
		FieldSpeed:     {Key: "speed", Label: "Speed", Kind: FieldInt, Range: Range{1, 1000}, Step: 1},
		FieldLineColor: {Key: "line_color", Label: "Line color", Kind: FieldColor},
		FieldRender:    {Key: "render", Label: "[re-render]", Kind: FieldAction},
		FieldPreset:    {Key: "preset", Label: "Preset: " + PresetNeuroSynapse, Kind: FieldAction},
	}
	return pn
}

// Params returns a copy of the draft bundle.
func (p *Panel) Params() Params {
	return p.draft
}

// SetParams replaces the draft with a bundle from the host and discards any
// uncommitted edit.
func (p *Panel) SetParams(params Params) {
	p.draft = params.Normalize()
	p.dirty = false
}

// SetPalette replaces the colors the color row cycles through.
func (p *Panel) SetPalette(colors []string) {
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	p.palette = colors
}

// Fields returns the row descriptions in display order.
func (p *Panel) Fields() []FieldSpec {
	return p.fields[:]
}

// FieldByKey returns the row with the given key.
func (p *Panel) FieldByKey(key string) (Field, bool) {
	for i, f := range p.fields {
		if f.Key == key {
			return Field(i), true
		}
	}
	return 0, false
}

// Selected returns the focused row.
func (p *Panel) Selected() Field {
	return p.selected
}

// Dirty reports whether the draft holds an uncommitted edit.
func (p *Panel) Dirty() bool {
	return p.dirty
}

// Select focuses a row, wrapping out-of-range indices. Moving away from an
// edited row commits it.
func (p *Panel) Select(f Field) {
	n := Field(fieldCount)
	f = ((f % n) + n) % n
	if f != p.selected && p.dirty {
		p.Commit()
	}
	p.selected = f
}

// Next focuses the following row.
func (p *Panel) Next() { p.Select(p.selected + 1) }

// Prev focuses the preceding row.
func (p *Panel) Prev() { p.Select(p.selected - 1) }

// Adjust moves the focused value by steps increments. Color rows step
// through the palette. Action rows ignore it.
func (p *Panel) Adjust(steps float64) {
	def := p.fields[p.selected]
	switch def.Kind {
	case FieldNumber:
		v := def.Range.Clamp(p.value(p.selected) + steps*def.Step)
		p.setValue(p.selected, v)
	case FieldInt:
		v := def.Range.Clamp(math.Round(p.value(p.selected) + steps*def.Step))
		p.setValue(p.selected, v)
	case FieldColor:
		if steps == 0 || len(p.palette) == 0 {
			return
		}
		n := len(p.palette)
		idx := p.paletteIndex()
		switch {
		case idx < 0:
			idx = 0
		case steps > 0:
			idx = (idx + 1) % n
		default:
			idx = (idx - 1 + n) % n
		}
		p.draft.LineColor = p.palette[idx]
	default:
		return
	}
	p.dirty = true
}

// SetValue assigns a numeric row directly, clamped to its range.
func (p *Panel) SetValue(f Field, v float64) {
	if f < 0 || f >= fieldCount {
		return
	}
	def := p.fields[f]
	switch def.Kind {
	case FieldNumber:
		p.setValue(f, def.Range.Clamp(v))
	case FieldInt:
		p.setValue(f, def.Range.Clamp(math.Round(v)))
	default:
		return
	}
	p.dirty = true
}

// SetColor assigns the line color directly. Invalid colors are rejected.
func (p *Panel) SetColor(s string) error {
	if _, err := ParseColor(s); err != nil {
		return err
	}
	p.draft.LineColor = s
	p.dirty = true
	return nil
}

// Commit finishes the edit on the focused row. On a value row with pending
// changes it emits OnChange; on an action row it runs the action.
func (p *Panel) Commit() {
	if p.fields[p.selected].Kind == FieldAction {
		p.activate(p.selected)
		return
	}
	if !p.dirty {
		return
	}
	p.dirty = false
	p.flash(p.selected)
	if p.OnChange != nil {
		p.OnChange(p.draft)
	}
}

// TriggerRender emits OnRender with the current draft.
func (p *Panel) TriggerRender() {
	p.dirty = false
	p.flash(FieldRender)
	if p.OnRender != nil {
		p.OnRender(p.draft)
	}
}

// ApplyPreset replaces the draft with a named preset and emits OnChange.
func (p *Panel) ApplyPreset(name string) error {
	params, err := Preset(name, p.width, p.height)
	if err != nil {
		Logger().Warn("preset rejected", "name", name, "error", err)
		return err
	}
	p.draft = params
	p.dirty = false
	p.flash(FieldPreset)
	if p.OnChange != nil {
		p.OnChange(p.draft)
	}
	return nil
}

func (p *Panel) activate(f Field) {
	switch f {
	case FieldRender:
		p.TriggerRender()
	case FieldPreset:
		_ = p.ApplyPreset(PresetNeuroSynapse)
	}
}

func (p *Panel) value(f Field) float64 {
	b := p.draft.StartBranch
	switch f {
	case FieldStartX:
		return b.Start.X
	case FieldStartY:
		return b.Start.Y
	case FieldLength:
		return b.Length
	case FieldAngle:
		return b.Theta
	case FieldMaxForks:
		return float64(p.draft.MaxForks)
	case FieldSpeed:
		return float64(p.draft.Speed)
	}
	return 0
}

func (p *Panel) setValue(f Field, v float64) {
	switch f {
	case FieldStartX:
		p.draft.StartBranch.Start.X = v
	case FieldStartY:
		p.draft.StartBranch.Start.Y = v
	case FieldLength:
		p.draft.StartBranch.Length = v
	case FieldAngle:
		p.draft.StartBranch.Theta = v
	case FieldMaxForks:
		p.draft.MaxForks = int(v)
	case FieldSpeed:
		p.draft.Speed = int(v)
	}
}

// paletteIndex returns the palette position of the draft color, or -1.
func (p *Panel) paletteIndex() int {
	for i, c := range p.palette {
		if c == p.draft.LineColor {
			return i
		}
	}
	return -1
}

// Text returns the display value of a row.
func (p *Panel) Text(f Field) string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	switch p.fields[f].Kind {
	case FieldNumber:
		return fmt.Sprintf("%.2f", p.value(f))
	case FieldInt:
		return fmt.Sprintf("%d", int(p.value(f)))
	case FieldColor:
		if p.draft.LineColor == "" {
			return DefaultLineColor
		}
		return p.draft.LineColor
	}
	return ""
}

// Lines returns one display line per row, marking the focused one.
func (p *Panel) Lines() []string {
	lines := make([]string, 0, fieldCount)
	for i, def := range p.fields {
		cursor := "  "
		if Field(i) == p.selected {
			cursor = "> "
		}
		if def.Kind == FieldAction {
			lines = append(lines, cursor+def.Label)
			continue
		}
		mark := ""
		if Field(i) == p.selected && p.dirty {
			mark = " *"
		}
		lines = append(lines, fmt.Sprintf("%s%-11s %s%s", cursor, def.Label, p.Text(Field(i)), mark))
	}
	return lines
}

// Update advances the commit highlight by dt seconds.
func (p *Panel) Update(dt float32) {
	if p.highlight != nil {
		p.highlight.Update(dt)
		if p.highlight.Done {
			p.highlight = nil
		}
	}
}

// Highlight returns the row currently flashing and its opacity, or false.
func (p *Panel) Highlight() (Field, float64, bool) {
	if p.highlight == nil {
		return 0, 0, false
	}
	return p.highlightRow, p.highlight.Value, true
}

func (p *Panel) flash(f Field) {
	p.highlightRow = f
	p.highlight = newFade(highlightDuration)
}
