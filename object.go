package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Object is the fundamental drawable element. A single flat struct is used
// for all object kinds to avoid interface dispatch on the hot path.
type Object struct {
	Kind ObjectKind

	// Tags. These survive serialization exactly and are the only fields the
	// layer projection is allowed to write (identity and display name, once).
	Identity    string
	DisplayName string
	Visible     bool
	Locked      bool
	Selectable  bool

	// Transient marks in-progress helper objects (crop guides, selection
	// handles). Transient objects are excluded from layer projection and
	// from snapshots.
	Transient bool

	// Transform (canvas space)
	X, Y           float64
	Width, Height  float64
	ScaleX, ScaleY float64
	Rotation       float64

	// Style
	Opacity     float64
	Fill        Color
	HasFill     bool
	Stroke      Color
	HasStroke   bool
	StrokeWidth float64

	// Line and path geometry, in local space relative to (X, Y).
	Points []Vec2

	// Text fields (KindText). Face is runtime-only and not serialized;
	// restored text objects render with the package default face until one
	// is reattached.
	Text     string
	FontSize float64
	Face     text.Face

	// Image fields (KindImage). Image is the live texture; source holds the
	// PNG-encoded pixels it was built from, so snapshots can round-trip
	// without reading the GPU.
	Image  *ebiten.Image
	source []byte

	// Group children (KindGroup). Draw order within the group follows slice
	// order, same as the canvas itself.
	children []*Object
}

// objectDefaults sets the common default field values shared by all constructors.
func objectDefaults(o *Object) {
	o.ScaleX = 1
	o.ScaleY = 1
	o.Opacity = 1
	o.Visible = true
	o.Selectable = true
}

// NewRect creates a rectangle object with the given bounds.
func NewRect(name string, x, y, w, h float64) *Object {
	o := &Object{Kind: KindRect, DisplayName: name, X: x, Y: y, Width: w, Height: h}
	objectDefaults(o)
	return o
}

// NewEllipse creates an ellipse object inscribed in the given bounds.
func NewEllipse(name string, x, y, w, h float64) *Object {
	o := &Object{Kind: KindEllipse, DisplayName: name, X: x, Y: y, Width: w, Height: h}
	objectDefaults(o)
	return o
}

// NewLine creates a straight line from (x1, y1) to (x2, y2) in canvas space.
// The object's position is (x1, y1); the endpoints are stored as local points.
func NewLine(name string, x1, y1, x2, y2 float64) *Object {
	o := &Object{
		Kind: KindLine, DisplayName: name,
		X: x1, Y: y1,
		Points:      []Vec2{{0, 0}, {x2 - x1, y2 - y1}},
		StrokeWidth: 1,
		Stroke:      ColorBlack,
		HasStroke:   true,
	}
	objectDefaults(o)
	return o
}

// NewPath creates a freehand polyline through the given local-space points.
func NewPath(name string, points []Vec2) *Object {
	o := &Object{
		Kind: KindPath, DisplayName: name,
		Points:      points,
		StrokeWidth: 1,
		Stroke:      ColorBlack,
		HasStroke:   true,
	}
	objectDefaults(o)
	return o
}

// NewText creates a text object. The face may be nil; see Object.Face.
func NewText(name, content string, fontSize float64, face text.Face) *Object {
	o := &Object{
		Kind: KindText, DisplayName: name,
		Text:     content,
		FontSize: fontSize,
		Face:     face,
		Fill:     ColorBlack,
		HasFill:  true,
	}
	objectDefaults(o)
	return o
}

// NewImage creates an image object from PNG-encoded bytes. The texture is
// decoded immediately; the encoded source is retained for serialization.
// Width and Height default to the decoded dimensions.
func NewImage(name string, pngData []byte) (*Object, error) {
	img, err := decodeImage(pngData)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	o := &Object{
		Kind: KindImage, DisplayName: name,
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
		Image:  img,
		source: append([]byte(nil), pngData...),
	}
	objectDefaults(o)
	return o, nil
}

// NewGroup creates a group object containing the given children.
// Panics if any child is nil.
func NewGroup(name string, children ...*Object) *Object {
	for _, c := range children {
		if c == nil {
			panic("easel: cannot group nil object")
		}
	}
	o := &Object{Kind: KindGroup, DisplayName: name, children: children}
	objectDefaults(o)
	return o
}

// Children returns a group's child list. The returned slice MUST NOT be
// mutated by the caller. Nil for non-group objects.
func (o *Object) Children() []*Object {
	return o.children
}

// SourceBytes returns the PNG-encoded source of an image object, or nil.
// The returned slice MUST NOT be mutated.
func (o *Object) SourceBytes() []byte {
	return o.source
}

// Bounds returns the object's untransformed bounding rectangle in canvas
// space. For lines and paths this is the AABB of the points.
func (o *Object) Bounds() Rect {
	switch o.Kind {
	case KindLine, KindPath:
		if len(o.Points) == 0 {
			return Rect{X: o.X, Y: o.Y}
		}
		minX, minY := o.Points[0].X, o.Points[0].Y
		maxX, maxY := minX, minY
		for _, p := range o.Points[1:] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
		return Rect{X: o.X + minX, Y: o.Y + minY, Width: maxX - minX, Height: maxY - minY}
	default:
		return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
	}
}
