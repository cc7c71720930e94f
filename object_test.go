package easel

import "testing"

func TestConstructorDefaults(t *testing.T) {
	o := NewRect("r", 1, 2, 3, 4)
	if o.ScaleX != 1 || o.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", o.ScaleX, o.ScaleY)
	}
	if o.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", o.Opacity)
	}
	if !o.Visible || !o.Selectable {
		t.Error("new objects should be visible and selectable")
	}
	if o.Locked || o.Transient {
		t.Error("new objects should be unlocked and non-transient")
	}
	if o.Identity != "" {
		t.Errorf("Identity = %q, want empty until projected", o.Identity)
	}
}

func TestNewLineGeometry(t *testing.T) {
	o := NewLine("edge", 10, 20, 40, 60)
	if o.X != 10 || o.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", o.X, o.Y)
	}
	if len(o.Points) != 2 || o.Points[0] != (Vec2{0, 0}) || o.Points[1] != (Vec2{30, 40}) {
		t.Errorf("Points = %v, want [{0 0} {30 40}]", o.Points)
	}
	if !o.HasStroke || o.StrokeWidth != 1 {
		t.Error("lines default to a 1px stroke")
	}
}

func TestNewTextDefaults(t *testing.T) {
	o := NewText("caption", "hi", 18, nil)
	if o.Text != "hi" || o.FontSize != 18 {
		t.Errorf("text = %q size %v", o.Text, o.FontSize)
	}
	if !o.HasFill || o.Fill != ColorBlack {
		t.Error("text defaults to a black fill")
	}
}

func TestNewGroupNilChildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGroup with nil child should panic")
		}
	}()
	NewGroup("g", NewRect("a", 0, 0, 1, 1), nil)
}

func TestBoundsShapes(t *testing.T) {
	r := NewRect("r", 10, 20, 30, 40)
	if b := r.Bounds(); b != (Rect{10, 20, 30, 40}) {
		t.Errorf("rect Bounds() = %v", b)
	}

	e := NewEllipse("e", -5, -5, 10, 10)
	if b := e.Bounds(); b != (Rect{-5, -5, 10, 10}) {
		t.Errorf("ellipse Bounds() = %v", b)
	}
}

func TestBoundsPath(t *testing.T) {
	p := NewPath("p", []Vec2{{0, 0}, {10, -4}, {-2, 6}})
	p.X, p.Y = 100, 200

	b := p.Bounds()
	if b != (Rect{X: 98, Y: 196, Width: 12, Height: 10}) {
		t.Errorf("path Bounds() = %v, want {98 196 12 10}", b)
	}
}

func TestBoundsEmptyPath(t *testing.T) {
	p := NewPath("p", nil)
	p.X, p.Y = 5, 6
	if b := p.Bounds(); b != (Rect{X: 5, Y: 6}) {
		t.Errorf("empty path Bounds() = %v, want {5 6 0 0}", b)
	}
}

func TestNewImageDimensions(t *testing.T) {
	o, err := NewImage("pic", smallPNG(t))
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if o.Width != 2 || o.Height != 2 {
		t.Errorf("dims = %vx%v, want 2x2", o.Width, o.Height)
	}
	if o.Image == nil {
		t.Error("texture should be decoded eagerly")
	}
	if len(o.SourceBytes()) == 0 {
		t.Error("encoded source should be retained")
	}
}
