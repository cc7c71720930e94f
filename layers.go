package easel

import (
	"fmt"
	"time"
)

// Layer is a read-only projection of one canvas object for display and
// management. The backing Object pointer is non-owning: the canvas owns the
// object's lifetime, and a Layer may outlive its object's membership.
type Layer struct {
	Identity    string
	DisplayName string
	Kind        ObjectKind
	Visible     bool
	Opacity     float64
	Locked      bool

	// Object is the live backing object, for invoking mutations through.
	Object *Object
}

// layerIDCounter is a plain counter (no atomic — easel is single-threaded).
var layerIDCounter int

// nextLayerIdentity generates a session-unique identity tag: a monotonic
// counter combined with a coarse timestamp. No cross-session uniqueness is
// guaranteed or needed.
func nextLayerIdentity() string {
	layerIDCounter++
	return fmt.Sprintf("layer-%d-%d", layerIDCounter, time.Now().Unix())
}

// Panel projects the canvas as an ordered, display-ready layer list and
// tracks which identity is active for UI highlighting.
//
// The layer list is always the reverse of the canvas draw order: index 0 is
// the topmost (last-drawn) object. Transient objects are excluded.
type Panel struct {
	canvas *Canvas
	layers []Layer
	active string
}

// NewPanel creates a layer panel bound to the given canvas.
func NewPanel(c *Canvas) *Panel {
	if c == nil {
		panic("easel: panel needs a canvas")
	}
	return &Panel{canvas: c}
}

// Resync rebuilds the full layer list from the canvas's current object
// order. The list is regenerated wholesale, never patched incrementally, so
// calling twice without underlying changes yields an identical list.
//
// Objects seen for the first time are assigned a generated identity and a
// positional display name. That assignment is the only mutation Resync makes
// to the canvas, and it happens exactly once per object.
func (p *Panel) Resync() {
	objs := p.canvas.Objects()
	p.layers = p.layers[:0]
	for i, o := range objs {
		if o.Transient {
			continue
		}
		if o.Identity == "" {
			o.Identity = nextLayerIdentity()
		}
		if o.DisplayName == "" {
			o.DisplayName = fmt.Sprintf("Layer %d", i+1)
		}
		p.layers = append(p.layers, Layer{
			Identity:    o.Identity,
			DisplayName: o.DisplayName,
			Kind:        o.Kind,
			Visible:     o.Visible,
			Opacity:     o.Opacity,
			Locked:      o.Locked,
			Object:      o,
		})
	}
	// Reverse: first-drawn = bottom = last in the display list.
	for i, j := 0, len(p.layers)-1; i < j; i, j = i+1, j-1 {
		p.layers[i], p.layers[j] = p.layers[j], p.layers[i]
	}
}

// Layers returns the display-ordered layer list (topmost first). The
// returned slice MUST NOT be mutated by the caller; it is valid until the
// next Resync.
func (p *Panel) Layers() []Layer {
	return p.layers
}

// Find returns the layer with the given identity and whether it exists.
func (p *Panel) Find(identity string) (Layer, bool) {
	for _, l := range p.layers {
		if l.Identity == identity {
			return l, true
		}
	}
	return Layer{}, false
}

// SetActive marks the given identity as active for UI highlighting. This
// does not touch the canvas's own selection state; the host UI synchronizes
// that in the opposite direction.
func (p *Panel) SetActive(identity string) {
	p.active = identity
}

// ClearActive clears the active identity.
func (p *Panel) ClearActive() {
	p.active = ""
}

// ActiveIdentity returns the active identity, or "" when none is set.
func (p *Panel) ActiveIdentity() string {
	return p.active
}

// Reorder moves the object with fromID to the canvas position currently
// occupied by the object with toID, then resyncs. Because the display list
// is the reverse of draw order, dropping a layer onto another in the UI maps
// directly onto the target object's canvas index — the insertion shift is
// handled by Canvas.MoveTo.
//
// Silent no-op when either identity cannot be resolved in the live canvas:
// the object may have been removed between drag-start and drop.
func (p *Panel) Reorder(fromID, toID string) {
	if fromID == toID {
		return
	}
	from := p.findObject(fromID)
	to := p.findObject(toID)
	if from == nil || to == nil {
		return
	}
	toIndex := p.canvas.IndexOf(to)
	if toIndex < 0 {
		return
	}
	p.canvas.MoveTo(from, toIndex)
	p.Resync()
}

// findObject resolves an identity against the live canvas, not the cached
// layer list — the list may be stale relative to a racing removal.
func (p *Panel) findObject(identity string) *Object {
	if identity == "" {
		return nil
	}
	for _, o := range p.canvas.Objects() {
		if o.Identity == identity {
			return o
		}
	}
	return nil
}
