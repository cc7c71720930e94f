// Package easel is the state-management core of a layered canvas editor for
// [Ebitengine].
//
// Easel owns the three pieces a layer-based editor cannot get wrong: the
// undo/redo history ([History]), the layer list projection ([Panel]), and the
// restore protocol that rebuilds the canvas from a stored [Snapshot] without
// corrupting object identity, dimensions, or zoom state.
//
// # Quick start
//
// Create an [Editor], which wires a [Canvas], [History], [Panel], and
// [Viewport] together:
//
//	ed := easel.New(easel.Config{Width: 800, Height: 600, ViewW: 1280, ViewH: 720})
//	rect := easel.NewRect("box", 100, 100, 200, 150)
//	rect.Fill, rect.HasFill = easel.Color{R: 0.3, G: 0.7, B: 1, A: 1}, true
//	ed.Canvas.Add(rect) // auto-commits a history entry and resyncs layers
//
//	ed.Undo() // removes the rect again
//	ed.Redo() // brings it back
//
// # Scene graph
//
// Every drawable is an [Object]: a single flat struct for all kinds (image,
// rectangle, ellipse, line, freehand path, text, group) to avoid interface
// dispatch. Objects live in a [Canvas], whose slice order is draw order:
// index 0 is drawn first and therefore sits at the bottom of the stack.
//
// # History
//
// [History] keeps a bounded sequence of immutable snapshots plus a cursor.
// Committing after an undo discards the redo branch; exceeding capacity
// evicts the oldest snapshot while preserving the cursor's relative
// position. Restoring never mutates a stored snapshot and never touches the
// live canvas until the snapshot has deserialized successfully.
//
// # Layers
//
// [Panel] projects the canvas into a display-ordered layer list: the reverse
// of draw order, minus transient helper objects, with a stable identity tag
// assigned to each object the first time it is seen.
//
// Easel is single-threaded by design, matching Ebitengine's game loop. No
// locking is used anywhere; the only guard is the restore state machine that
// ignores re-entrant commits while a snapshot is being applied.
//
// [Ebitengine]: https://ebitengine.org
package easel
