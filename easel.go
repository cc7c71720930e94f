package easel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorWhite and ColorBlack are the usual endpoints.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// ParseColor parses a CSS-style hex color: "#rgb", "#rrggbb", or "#rrggbbaa".
// Alpha defaults to 1 when not present.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	parse := func(sub string) (float64, error) {
		v, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, err
		}
		return float64(v) / 255, nil
	}
	var parts [4]string
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			parts[i] = string(hex[i]) + string(hex[i])
		}
		parts[3] = "ff"
	case 6:
		parts[0], parts[1], parts[2], parts[3] = hex[0:2], hex[2:4], hex[4:6], "ff"
	case 8:
		parts[0], parts[1], parts[2], parts[3] = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	default:
		return Color{}, fmt.Errorf("easel: invalid color %q", s)
	}
	var c Color
	var err error
	if c.R, err = parse(parts[0]); err != nil {
		return Color{}, fmt.Errorf("easel: invalid color %q", s)
	}
	if c.G, err = parse(parts[1]); err != nil {
		return Color{}, fmt.Errorf("easel: invalid color %q", s)
	}
	if c.B, err = parse(parts[2]); err != nil {
		return Color{}, fmt.Errorf("easel: invalid color %q", s)
	}
	if c.A, err = parse(parts[3]); err != nil {
		return Color{}, fmt.Errorf("easel: invalid color %q", s)
	}
	return c, nil
}

// Hex returns the color as "#rrggbb" or "#rrggbbaa" when alpha is not 1.
func (c Color) Hex() string {
	to8 := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// toRGBA converts to a premultiplied 8-bit color.RGBA.
func (c Color) toRGBA() color.RGBA {
	to8 := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

// premultiplied returns float32 RGBA components with alpha multiplied in,
// scaled by an additional alpha factor. Render-submission form.
func (c Color) premultiplied(alpha float64) (r, g, b, a float32) {
	ca := c.A * alpha
	return float32(c.R * ca), float32(c.G * ca), float32(c.B * ca), float32(ca)
}

// Vec2 is a 2D point or direction in canvas space.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// WhitePixel is a 1x1 white image used to render solid-color shape geometry.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// ObjectKind distinguishes rendering and serialization behavior for an Object.
type ObjectKind uint8

const (
	KindRect    ObjectKind = iota // filled/stroked rectangle
	KindEllipse                   // filled/stroked ellipse inscribed in the bounds
	KindLine                      // straight stroked segment between two points
	KindPath                      // stroked freehand polyline
	KindText                      // text block rendered with a text/v2 face
	KindImage                     // raster image
	KindGroup                     // container for child objects
)

// kindNames maps ObjectKind to its wire name and user-facing label.
var kindNames = [...]string{
	KindRect:    "rect",
	KindEllipse: "ellipse",
	KindLine:    "line",
	KindPath:    "path",
	KindText:    "text",
	KindImage:   "image",
	KindGroup:   "group",
}

// String returns the kind's wire name ("rect", "ellipse", ...).
func (k ObjectKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ObjectKind(%d)", uint8(k))
}

// kindTitles maps ObjectKind to its user-facing label, used in generated
// history entry labels ("Add Rectangle").
var kindTitles = [...]string{
	KindRect:    "Rectangle",
	KindEllipse: "Ellipse",
	KindLine:    "Line",
	KindPath:    "Path",
	KindText:    "Text",
	KindImage:   "Image",
	KindGroup:   "Group",
}

// Title returns the kind's user-facing label.
func (k ObjectKind) Title() string {
	if int(k) < len(kindTitles) {
		return kindTitles[k]
	}
	return "Object"
}

// kindFromName resolves a wire name back to an ObjectKind.
func kindFromName(name string) (ObjectKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return ObjectKind(k), true
		}
	}
	return 0, false
}
