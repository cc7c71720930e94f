package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Config configures a new Editor.
type Config struct {
	// Width and Height are the initial canvas surface dimensions.
	Width, Height int
	// ViewW and ViewH are the on-screen view area dimensions. Zero values
	// default to the canvas dimensions.
	ViewW, ViewH float64
	// Capacity bounds the undo history; <= 0 selects DefaultCapacity.
	Capacity int
	// DocumentName names the initial document. Empty means "Untitled".
	DocumentName string
}

// Editor wires the four components of the core together: the canvas (scene
// graph), the history (snapshot store), the panel (layer projection), and
// the viewport (zoom/pan controller).
//
// Canvas change events drive auto-commit and layer resync; restore events
// drive the viewport's fit recomputation. Mutating the canvas directly
// therefore produces history entries without further ceremony.
type Editor struct {
	Canvas   *Canvas
	History  *History
	Panel    *Panel
	Viewport *Viewport

	doc     Document
	surface *ebiten.Image

	// suppress > 0 coalesces auto-commits: mutations inside Batch produce a
	// single history entry instead of one per change event.
	suppress int
}

// New creates a fully wired editor and commits the initial document state.
func New(cfg Config) *Editor {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		panic("easel: editor dimensions must be positive")
	}
	if cfg.ViewW <= 0 {
		cfg.ViewW = float64(cfg.Width)
	}
	if cfg.ViewH <= 0 {
		cfg.ViewH = float64(cfg.Height)
	}

	c := NewCanvas(cfg.Width, cfg.Height)
	e := &Editor{
		Canvas:   c,
		History:  NewHistory(c, cfg.Capacity),
		Panel:    NewPanel(c),
		Viewport: NewViewport(cfg.ViewW, cfg.ViewH),
		doc:      newDocument(cfg.DocumentName),
	}

	c.OnAdded = func(o *Object) {
		e.Panel.Resync()
		e.autoCommit("Add " + o.Kind.Title())
	}
	c.OnRemoved = func(o *Object) {
		e.Panel.Resync()
		e.autoCommit("Remove " + o.Kind.Title())
	}
	c.OnModified = func(o *Object) {
		e.Panel.Resync()
		label := "Modify"
		if o != nil {
			label = "Modify " + o.Kind.Title()
		}
		e.autoCommit(label)
	}
	e.History.OnRestored = func(w, h int) {
		e.Panel.Resync()
		e.Viewport.FitToView(float64(w), float64(h))
	}

	e.History.Commit("New Document")
	e.Viewport.FitToView(float64(cfg.Width), float64(cfg.Height))
	return e
}

// Document returns the current document metadata.
func (e *Editor) Document() Document {
	return e.doc
}

// NewDocument discards everything: objects, background, history. The canvas
// is resized, a fresh document identity is assigned, and the empty state is
// committed as the first history entry.
func (e *Editor) NewDocument(name string, width, height int) {
	e.suppress++
	e.Canvas.replaceAll(nil)
	e.Canvas.SetSize(width, height)
	e.Canvas.ClearBackground()
	e.suppress--

	e.doc = newDocument(name)
	e.History.Clear()
	e.Panel.Resync()
	e.Panel.ClearActive()
	e.History.Commit("New Document")
	e.Viewport.FitToView(float64(width), float64(height))
}

// Batch runs fn with auto-commit suspended, then commits a single history
// entry with the given label. Use it to coalesce rapid-fire edits (a brush
// stroke's point updates, a multi-object paste) into one undo step.
// Nested batches commit once, at the outermost level.
func (e *Editor) Batch(label string, fn func()) {
	e.suppress++
	fn()
	e.suppress--
	if e.suppress == 0 {
		e.Panel.Resync()
		e.History.Commit(label)
	}
}

// autoCommit commits unless a batch is coalescing. Commits during restore
// are already ignored by the history itself.
func (e *Editor) autoCommit(label string) {
	if e.suppress > 0 {
		return
	}
	e.History.Commit(label)
}

// Undo steps the history back one entry. Returns false when there is
// nothing to undo.
func (e *Editor) Undo() bool { return e.History.Undo() }

// Redo steps the history forward one entry. Returns false when there is
// nothing to redo.
func (e *Editor) Redo() bool { return e.History.Redo() }

// Reorder moves the layer with fromID to the position of toID as a single
// labeled history entry. Silent no-op on unresolvable identities.
func (e *Editor) Reorder(fromID, toID string) {
	e.Batch("Reorder", func() {
		e.Panel.Reorder(fromID, toID)
	})
}

// Resize changes the canvas surface dimensions as a labeled history entry
// and refits the viewport.
func (e *Editor) Resize(width, height int) {
	e.Batch("Resize", func() {
		e.Canvas.SetSize(width, height)
	})
	e.Viewport.FitToView(float64(width), float64(height))
}

// Update advances viewport animations. Call once per frame from the game loop.
func (e *Editor) Update() {
	e.Viewport.Update(float32(1.0 / float64(ebiten.TPS())))
}

// Draw renders the canvas through the viewport onto screen. The canvas is
// rasterized into a cached surface image only when dirty; pans and zooms
// reuse the cached surface.
func (e *Editor) Draw(screen *ebiten.Image) {
	w, h := e.Canvas.Size()
	if e.surface == nil || e.surface.Bounds().Dx() != w || e.surface.Bounds().Dy() != h {
		if e.surface != nil {
			e.surface.Deallocate()
		}
		e.surface = ebiten.NewImage(w, h)
		e.Canvas.Invalidate()
	}
	if e.Canvas.TakeDirty() {
		e.surface.Clear()
		e.Canvas.Draw(e.surface)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoMFromAffine(e.Viewport.ViewMatrix())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(e.surface, op)
}
