package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw rasterizes the object list onto dst in draw order (index 0 first).
// dst is expected to be the canvas surface at 1:1 scale; the viewport
// transform is applied later when the surface is blitted to screen.
func (c *Canvas) Draw(dst *ebiten.Image) {
	if c.hasBackground {
		dst.Fill(c.background.toRGBA())
	}
	for _, o := range c.objects {
		drawObject(dst, o, identityTransform, 1.0)
	}
}

// drawObject renders one object with the accumulated parent transform and
// alpha. Groups recurse; invisible or fully transparent subtrees are skipped
// entirely.
func drawObject(dst *ebiten.Image, o *Object, parent [6]float64, parentAlpha float64) {
	if !o.Visible {
		return
	}
	alpha := parentAlpha * o.Opacity
	if alpha <= 0 {
		return
	}
	m := multiplyAffine(parent, localTransform(o))

	switch o.Kind {
	case KindGroup:
		for _, child := range o.children {
			drawObject(dst, child, m, alpha)
		}
	case KindImage:
		drawImageObject(dst, o, m, alpha)
	case KindText:
		drawTextObject(dst, o, m, alpha)
	case KindRect:
		var p vector.Path
		appendRect(&p, o, m)
		paintPath(dst, &p, o, alpha)
	case KindEllipse:
		var p vector.Path
		appendEllipse(&p, o, m)
		paintPath(dst, &p, o, alpha)
	case KindLine, KindPath:
		if len(o.Points) < 2 || !o.HasStroke {
			return
		}
		var p vector.Path
		appendPolyline(&p, o, m)
		strokePath(dst, &p, o.Stroke, alpha, o.StrokeWidth)
	}
}

// appendRect appends the object's bounds as a closed path, transformed by m.
func appendRect(p *vector.Path, o *Object, m [6]float64) {
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, o.Width, 0)
	x2, y2 := transformPoint(m, o.Width, o.Height)
	x3, y3 := transformPoint(m, 0, o.Height)
	p.MoveTo(float32(x0), float32(y0))
	p.LineTo(float32(x1), float32(y1))
	p.LineTo(float32(x2), float32(y2))
	p.LineTo(float32(x3), float32(y3))
	p.Close()
}

// ellipseKappa is the cubic Bézier control distance for a quarter circle.
const ellipseKappa = 0.5522847498307936

// appendEllipse appends the ellipse inscribed in the object's bounds as four
// cubic segments, transformed by m.
func appendEllipse(p *vector.Path, o *Object, m [6]float64) {
	cx, cy := o.Width/2, o.Height/2
	rx, ry := o.Width/2, o.Height/2
	kx, ky := rx*ellipseKappa, ry*ellipseKappa

	pt := func(x, y float64) (float32, float32) {
		tx, ty := transformPoint(m, x, y)
		return float32(tx), float32(ty)
	}

	sx, sy := pt(cx+rx, cy)
	p.MoveTo(sx, sy)
	c0x, c0y := pt(cx+rx, cy+ky)
	c1x, c1y := pt(cx+kx, cy+ry)
	ex, ey := pt(cx, cy+ry)
	p.CubicTo(c0x, c0y, c1x, c1y, ex, ey)
	c0x, c0y = pt(cx-kx, cy+ry)
	c1x, c1y = pt(cx-rx, cy+ky)
	ex, ey = pt(cx-rx, cy)
	p.CubicTo(c0x, c0y, c1x, c1y, ex, ey)
	c0x, c0y = pt(cx-rx, cy-ky)
	c1x, c1y = pt(cx-kx, cy-ry)
	ex, ey = pt(cx, cy-ry)
	p.CubicTo(c0x, c0y, c1x, c1y, ex, ey)
	c0x, c0y = pt(cx+kx, cy-ry)
	c1x, c1y = pt(cx+rx, cy-ky)
	ex, ey = pt(cx+rx, cy)
	p.CubicTo(c0x, c0y, c1x, c1y, ex, ey)
	p.Close()
}

// appendPolyline appends the object's points as an open polyline,
// transformed by m.
func appendPolyline(p *vector.Path, o *Object, m [6]float64) {
	x, y := transformPoint(m, o.Points[0].X, o.Points[0].Y)
	p.MoveTo(float32(x), float32(y))
	for _, pt := range o.Points[1:] {
		x, y = transformPoint(m, pt.X, pt.Y)
		p.LineTo(float32(x), float32(y))
	}
}

// paintPath fills then strokes a closed path per the object's style flags.
func paintPath(dst *ebiten.Image, p *vector.Path, o *Object, alpha float64) {
	if o.HasFill {
		fillPath(dst, p, o.Fill, alpha)
	}
	if o.HasStroke && o.StrokeWidth > 0 {
		strokePath(dst, p, o.Stroke, alpha, o.StrokeWidth)
	}
}

// fillPath submits a filled path as triangles over WhitePixel.
func fillPath(dst *ebiten.Image, p *vector.Path, col Color, alpha float64) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	tintVertices(vs, col, alpha)
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	dst.DrawTriangles(vs, is, WhitePixel, op)
}

// strokePath submits a stroked path as triangles over WhitePixel.
// Stroke width is in canvas units and is not scaled by the object transform.
func strokePath(dst *ebiten.Image, p *vector.Path, col Color, alpha, width float64) {
	sop := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, sop)
	tintVertices(vs, col, alpha)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, WhitePixel, op)
}

// tintVertices applies a premultiplied color to generated path vertices.
func tintVertices(vs []ebiten.Vertex, col Color, alpha float64) {
	r, g, b, a := col.premultiplied(alpha)
	for i := range vs {
		vs[i].SrcX = 0.5
		vs[i].SrcY = 0.5
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

// drawImageObject renders an image object, scaling the texture to the
// object's Width/Height before applying the accumulated transform.
func drawImageObject(dst *ebiten.Image, o *Object, m [6]float64, alpha float64) {
	if o.Image == nil {
		return
	}
	b := o.Image.Bounds()
	bw, bh := float64(b.Dx()), float64(b.Dy())
	if bw == 0 || bh == 0 {
		return
	}
	scale := [6]float64{o.Width / bw, 0, 0, o.Height / bh, 0, 0}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoMFromAffine(multiplyAffine(m, scale))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(o.Image, op)
}

// drawTextObject renders a text object. Objects with no attached face (e.g.
// freshly restored from a snapshot before the host reattaches fonts) are
// skipped silently.
func drawTextObject(dst *ebiten.Image, o *Object, m [6]float64, alpha float64) {
	if o.Face == nil || o.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoMFromAffine(m)
	op.ColorScale.ScaleWithColor(o.Fill.toRGBA())
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.LineSpacing = o.FontSize * 1.2
	text.Draw(dst, o.Text, o.Face, op)
}

// geoMFromAffine converts an [a, b, c, d, tx, ty] affine matrix to an
// ebiten.GeoM.
func geoMFromAffine(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}
