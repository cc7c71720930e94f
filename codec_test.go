package easel

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestSceneRoundTripShapes(t *testing.T) {
	c := NewCanvas(100, 100)

	r := NewRect("box", 10, 20, 30, 40)
	r.Identity = "id-box"
	r.Fill, r.HasFill = Color{0.2, 0.4, 0.6, 1}, true
	r.Stroke, r.HasStroke = ColorBlack, true
	r.StrokeWidth = 2
	r.Rotation = 0.5
	r.Locked = true
	c.Add(r)

	l := NewLine("edge", 0, 0, 50, 50)
	l.Identity = "id-edge"
	l.Visible = false
	c.Add(l)

	p := NewPath("scribble", []Vec2{{0, 0}, {5, 3}, {9, -2}})
	p.Identity = "id-scribble"
	c.Add(p)

	txt := NewText("caption", "hello\nworld", 24, nil)
	txt.Identity = "id-caption"
	txt.Selectable = false
	c.Add(txt)

	data, err := MarshalScene(c)
	if err != nil {
		t.Fatalf("MarshalScene: %v", err)
	}
	sd, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	objs, err := sd.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(objs) != 4 {
		t.Fatalf("len(objs) = %d, want 4", len(objs))
	}

	got := objs[0]
	if got.Kind != KindRect {
		t.Errorf("Kind = %v, want KindRect", got.Kind)
	}
	if got.Identity != "id-box" || got.DisplayName != "box" {
		t.Errorf("tags = %q/%q, want id-box/box", got.Identity, got.DisplayName)
	}
	if !got.Locked {
		t.Error("Locked should survive the round trip")
	}
	if got.X != 10 || got.Y != 20 || got.Width != 30 || got.Height != 40 {
		t.Errorf("geometry = (%v,%v,%v,%v), want (10,20,30,40)", got.X, got.Y, got.Width, got.Height)
	}
	if !got.HasFill || got.Fill != (Color{0.2, 0.4, 0.6, 1}) {
		t.Errorf("Fill = %v, %v", got.Fill, got.HasFill)
	}
	if !got.HasStroke || got.StrokeWidth != 2 {
		t.Errorf("Stroke = %v width %v", got.HasStroke, got.StrokeWidth)
	}
	if got.Rotation != 0.5 {
		t.Errorf("Rotation = %v, want 0.5", got.Rotation)
	}

	if objs[1].Visible {
		t.Error("line Visible should be false")
	}
	if len(objs[1].Points) != 2 {
		t.Errorf("line points = %d, want 2", len(objs[1].Points))
	}
	if len(objs[2].Points) != 3 || objs[2].Points[2] != (Vec2{9, -2}) {
		t.Errorf("path points = %v", objs[2].Points)
	}
	if objs[3].Text != "hello\nworld" || objs[3].FontSize != 24 {
		t.Errorf("text = %q size %v", objs[3].Text, objs[3].FontSize)
	}
	if objs[3].Selectable {
		t.Error("text Selectable should be false")
	}
}

func TestSceneRoundTripGroup(t *testing.T) {
	c := NewCanvas(100, 100)
	child1 := NewRect("inner1", 0, 0, 5, 5)
	child2 := NewEllipse("inner2", 5, 5, 5, 5)
	g := NewGroup("bundle", child1, child2)
	g.Identity = "id-bundle"
	c.Add(g)

	data, err := MarshalScene(c)
	if err != nil {
		t.Fatalf("MarshalScene: %v", err)
	}
	sd, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	objs, err := sd.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(objs) != 1 || objs[0].Kind != KindGroup {
		t.Fatalf("want one group, got %v", objs)
	}
	children := objs[0].Children()
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if children[0].DisplayName != "inner1" || children[1].Kind != KindEllipse {
		t.Errorf("children = %q/%v", children[0].DisplayName, children[1].Kind)
	}
}

func TestMarshalSkipsTransient(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Add(NewRect("keep", 0, 0, 1, 1))
	guide := NewRect("guide", 0, 0, 100, 100)
	guide.Transient = true
	c.Add(guide)

	data, err := MarshalScene(c)
	if err != nil {
		t.Fatalf("MarshalScene: %v", err)
	}
	sd, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	if len(sd.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1 (transient skipped)", len(sd.Objects))
	}
	if sd.Objects[0].Name != "keep" {
		t.Errorf("Objects[0].Name = %q, want %q", sd.Objects[0].Name, "keep")
	}
}

func TestUnmarshalSceneErrors(t *testing.T) {
	if _, err := UnmarshalScene([]byte("{not json")); err == nil {
		t.Error("malformed JSON should error")
	}
	if _, err := UnmarshalScene([]byte(`{"version":99,"objects":[]}`)); err == nil {
		t.Error("unsupported version should error")
	}
}

func TestBuildUnknownKindErrors(t *testing.T) {
	sd, err := UnmarshalScene([]byte(`{"version":1,"objects":[{"kind":"blob"}]}`))
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	if _, err := sd.Build(); err == nil {
		t.Error("unknown kind should error")
	}
}

func TestBuildImageWithoutSourceErrors(t *testing.T) {
	sd, err := UnmarshalScene([]byte(`{"version":1,"objects":[{"kind":"image","name":"pic"}]}`))
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	if _, err := sd.Build(); err == nil {
		t.Error("image without source should error")
	}
}

// smallPNG encodes a 2x2 solid-color PNG for image-object tests.
func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
		img.Pix[i+3] = 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSceneRoundTripImage(t *testing.T) {
	c := NewCanvas(100, 100)
	o, err := NewImage("pic", smallPNG(t))
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if o.Width != 2 || o.Height != 2 {
		t.Fatalf("image dims = %vx%v, want 2x2", o.Width, o.Height)
	}
	c.Add(o)

	data, err := MarshalScene(c)
	if err != nil {
		t.Fatalf("MarshalScene: %v", err)
	}
	sd, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	objs, err := sd.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := objs[0]
	if got.Kind != KindImage {
		t.Fatalf("Kind = %v, want KindImage", got.Kind)
	}
	if got.Image == nil {
		t.Fatal("Image should be decoded")
	}
	if !bytes.Equal(got.SourceBytes(), o.SourceBytes()) {
		t.Error("source bytes should survive the round trip")
	}
}

func TestNewImageRejectsGarbage(t *testing.T) {
	if _, err := NewImage("bad", []byte("not a png")); err == nil {
		t.Error("NewImage should reject non-PNG data")
	}
}
