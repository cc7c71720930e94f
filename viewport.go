package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panAnim holds active pan-to tweens for viewport X and Y.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport controls the view onto the canvas: pan, zoom, and the on-screen
// area the canvas renders into. It tracks surface size through the restored
// notification so undo/redo across a crop keeps the fit consistent.
type Viewport struct {
	// X and Y are the canvas-space position the view centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = 100%, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// ViewW and ViewH are the screen-space dimensions of the view area.
	ViewW, ViewH float64

	// MinZoom and MaxZoom clamp all zoom changes.
	MinZoom, MaxZoom float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	zoomTween *gween.Tween
	pan       *panAnim
}

// NewViewport creates a viewport with the given view area and default zoom
// limits.
func NewViewport(viewW, viewH float64) *Viewport {
	return &Viewport{
		Zoom:    1.0,
		ViewW:   viewW,
		ViewH:   viewH,
		MinZoom: 0.05,
		MaxZoom: 16,
		dirty:   true,
	}
}

// SetViewSize resizes the on-screen view area (e.g. on window resize).
func (v *Viewport) SetViewSize(viewW, viewH float64) {
	v.ViewW = viewW
	v.ViewH = viewH
	v.dirty = true
}

// FitToView centers the given canvas dimensions in the view and picks the
// largest zoom that shows the whole canvas, capped at 100%. Cancels any
// running zoom or pan animation. Called automatically after restore, since
// an undo across a resize invalidates the previous fit.
func (v *Viewport) FitToView(canvasW, canvasH float64) {
	if canvasW <= 0 || canvasH <= 0 {
		return
	}
	v.zoomTween = nil
	v.pan = nil
	v.Zoom = v.clampZoom(math.Min(math.Min(v.ViewW/canvasW, v.ViewH/canvasH), 1.0))
	v.X = canvasW / 2
	v.Y = canvasH / 2
	v.dirty = true
}

// ZoomTo animates the zoom factor to target over duration seconds.
// The target is clamped to [MinZoom, MaxZoom].
func (v *Viewport) ZoomTo(target float64, duration float32, easeFn ease.TweenFunc) {
	target = v.clampZoom(target)
	if duration <= 0 {
		v.Zoom = target
		v.zoomTween = nil
		v.dirty = true
		return
	}
	v.zoomTween = gween.New(float32(v.Zoom), float32(target), duration, easeFn)
}

// PanTo animates the view center to the given canvas position over duration
// seconds.
func (v *Viewport) PanTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		v.X, v.Y = x, y
		v.pan = nil
		v.dirty = true
		return
	}
	v.pan = &panAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Update advances zoom and pan animations. Call once per frame.
func (v *Viewport) Update(dt float32) {
	if v.zoomTween != nil {
		val, done := v.zoomTween.Update(dt)
		v.Zoom = v.clampZoom(float64(val))
		v.dirty = true
		if done {
			v.zoomTween = nil
		}
	}
	if v.pan != nil {
		if !v.pan.doneX {
			val, done := v.pan.tweenX.Update(dt)
			v.X = float64(val)
			v.pan.doneX = done
			v.dirty = true
		}
		if !v.pan.doneY {
			val, done := v.pan.tweenY.Update(dt)
			v.Y = float64(val)
			v.pan.doneY = done
			v.dirty = true
		}
		if v.pan.doneX && v.pan.doneY {
			v.pan = nil
		}
	}
}

func (v *Viewport) clampZoom(z float64) float64 {
	return math.Max(v.MinZoom, math.Min(z, v.MaxZoom))
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = view center.
func (v *Viewport) computeViewMatrix() [6]float64 {
	if !v.dirty {
		return v.viewMatrix
	}
	v.dirty = false

	cx := v.ViewW / 2
	cy := v.ViewH / 2
	z := v.Zoom

	v.viewMatrix = [6]float64{z, 0, 0, z, cx - z*v.X, cy - z*v.Y}
	v.invViewMatrix = invertAffine(v.viewMatrix)
	return v.viewMatrix
}

// ViewMatrix returns the current view matrix in [a, b, c, d, tx, ty] layout.
func (v *Viewport) ViewMatrix() [6]float64 {
	return v.computeViewMatrix()
}

// CanvasToScreen converts canvas coordinates to screen coordinates.
func (v *Viewport) CanvasToScreen(cx, cy float64) (sx, sy float64) {
	v.computeViewMatrix()
	return transformPoint(v.viewMatrix, cx, cy)
}

// ScreenToCanvas converts screen coordinates to canvas coordinates.
func (v *Viewport) ScreenToCanvas(sx, sy float64) (cx, cy float64) {
	v.computeViewMatrix()
	return transformPoint(v.invViewMatrix, sx, sy)
}

// VisibleBounds returns the canvas-space rectangle currently visible.
func (v *Viewport) VisibleBounds() Rect {
	v.computeViewMatrix()
	x0, y0 := transformPoint(v.invViewMatrix, 0, 0)
	x1, y1 := transformPoint(v.invViewMatrix, v.ViewW, v.ViewH)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkDirty forces a recomputation of the view matrix. Call after setting
// X, Y, or Zoom directly (e.g. in a drag callback).
func (v *Viewport) MarkDirty() {
	v.dirty = true
}
