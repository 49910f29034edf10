// Package sapling grows animated, randomized branching trees on a 2D canvas
// using [Ebitengine] for the window and [gg] for windowless rendering.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window with the
// tree canvas and a keyboard-driven parameter panel:
//
//	err := sapling.Run(sapling.DefaultRunConfig())
//
// For a PNG without a window, use [Render]:
//
//	surface, res, err := sapling.Render(ctx, sapling.RenderOptions{
//		Width: 800, Height: 600, Params: sapling.DefaultParams(),
//	})
//	if err == nil {
//		err = surface.SavePNG("tree.png")
//	}
//
// # Growth
//
// A [Grower] owns one tree. [Grower.Init] draws the root [Branch] at once
// and queues its children; each child is grown on a later frame, where it
// again queues up to two children turned slightly left and right. Up to
// [Params.MaxForks] levels every branch forks; beyond that each direction
// continues on a coin flip, and any branch that leaves the canvas ends.
//
// # Animation
//
// Call [Grower.Tick] once per display refresh. Every [Params.Speed]-th tick
// drains a frame: each queued branch grows now with probability 0.6 or waits.
// [Grower.StopDrawing] empties the queue and makes Tick return false.
//
// # Panel
//
// [Panel] mirrors a [Params] bundle as a flat list of rows. Committed edits
// are published through Panel.OnChange and re-render requests through
// Panel.OnRender; the host ([App] in the window) owns the bundle and
// restarts the tree.
//
// Keys: Up/Down select a row, Left/Right adjust it (Shift for ten steps),
// Enter commits or activates, R re-renders, N applies the neuro-synapse
// preset, P exports a PNG, Space pauses.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package sapling
