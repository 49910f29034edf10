package sapling

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Params is the bundle the first tree grows from.
	Params Params
	// Seed feeds the random source. Zero picks a random seed.
	Seed uint64
	// Background is drawn behind the tree canvas.
	Background Color
	// LineWidth is the stroke width in pixels. Zero means 1.
	LineWidth float32

	HidePanel  bool
	ShowStatus bool

	// ExportDir receives PNG exports. Defaults to "exports".
	ExportDir string
	// Script, when set, drives the panel from a scripted step list.
	Script *PanelScript
	// FrameHook, when set, receives the statistics of every drained frame.
	FrameHook func(FrameStats)
}

// DefaultRunConfig returns a 960×640 window with the default bundle.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "sapling",
		Width:      960,
		Height:     640,
		Params:     DefaultParams(),
		Background: Color{R: 0.07, G: 0.07, B: 0.1, A: 1},
		ShowStatus: true,
		ExportDir:  "exports",
	}
}

// App is the host: it owns the authoritative Params bundle, the Grower and
// its canvas, and the panel that edits the bundle. It implements ebiten.Game.
type App struct {
	cfg    RunConfig
	params Params

	grower *Grower
	canvas *CanvasTexture
	panel  *Panel
	status *statusWidget
	script *PanelScript

	paused      bool
	exportQueue []string
	injectQueue []keyInput
}

// NewApp builds the host for cfg and starts the first tree.
func NewApp(cfg RunConfig) *App {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultRunConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "exports"
	}
	w, h := float64(cfg.Width), float64(cfg.Height)

	a := &App{
		cfg:    cfg,
		params: cfg.Params.Normalize(),
		script: cfg.Script,
	}
	a.canvas = NewCanvasTexture(cfg.Width, cfg.Height)
	a.canvas.LineWidth = cfg.LineWidth
	a.grower = NewGrower(w, h, WithParams(a.params), WithRandom(NewRandom(cfg.Seed)),
		WithFrameHook(cfg.FrameHook))
	a.grower.AttachSurface(a.canvas)

	a.panel = NewPanel(a.params, w, h)
	a.panel.OnChange = a.handleChange
	a.panel.OnRender = a.handleRender
	if cfg.ShowStatus {
		a.status = newStatusWidget()
	}

	a.grower.Init()
	return a
}

// Params returns the authoritative bundle.
func (a *App) Params() Params {
	return a.params
}

// Grower returns the tree engine.
func (a *App) Grower() *Grower {
	return a.grower
}

// Panel returns the parameter panel.
func (a *App) Panel() *Panel {
	return a.panel
}

// Paused reports whether ticking is suspended.
func (a *App) Paused() bool {
	return a.paused
}

// SetPaused suspends or resumes ticking. The tree keeps its queue.
func (a *App) SetPaused(paused bool) {
	a.paused = paused
}

// handleChange adopts a committed bundle and regrows the tree from it.
func (a *App) handleChange(p Params) {
	a.params = p.Normalize()
	Logger().Info("params changed", "max_forks", a.params.MaxForks, "speed", a.params.Speed, "color", a.params.LineColor)
	a.restart()
}

// handleRender regrows the tree from the bundle carried by the request.
func (a *App) handleRender(p Params) {
	a.params = p.Normalize()
	Logger().Info("render requested")
	a.restart()
}

// restart stops the current growth, wipes the canvas and seeds a new root.
func (a *App) restart() {
	a.grower.StopDrawing()
	a.grower.ClearCanvas()
	a.grower.SetParams(a.params)
	a.panel.SetParams(a.params)
	a.grower.Init()
}

// Update advances input, scripted steps and one animation tick.
func (a *App) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	a.updateInput()

	if !a.paused {
		a.grower.Tick()
	}
	a.panel.Update(float32(dt))
	if a.status != nil {
		a.status.update(dt, a.grower, a.paused)
	}
	return nil
}

// updateInput runs one script step, then applies one injected press or, when
// none is queued, the keyboard.
func (a *App) updateInput() {
	if a.script != nil {
		a.script.step(a)
	}
	if !a.processInjectedInput() {
		a.applyKeys(readKeys())
	}
}

// Draw composites the tree canvas and overlays onto screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.cfg.Background.toRGBA())
	screen.DrawImage(a.canvas.Image(), nil)

	if !a.cfg.HidePanel {
		a.panel.Draw(screen, 8, 8)
	}
	if a.status != nil {
		a.status.draw(screen, 8, float64(a.cfg.Height)-88)
	}

	a.flushExports()
}

// Layout keeps the logical screen at the configured canvas size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens a window and runs the app until it is closed.
func Run(cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = DefaultRunConfig().Title
	}
	app := NewApp(cfg)
	ebiten.SetWindowSize(app.cfg.Width, app.cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
