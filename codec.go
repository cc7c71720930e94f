package easel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// sceneVersion identifies the snapshot wire format.
const sceneVersion = 1

// SceneData is the structured form of a serialized scene. It is always built
// detached from the live canvas: deserialization never touches live objects,
// so a failed Build leaves the canvas exactly as it was.
type SceneData struct {
	Version int          `json:"version"`
	Objects []ObjectData `json:"objects"`
}

// ObjectData is the wire form of one Object, tags preserved exactly.
type ObjectData struct {
	Kind        string  `json:"kind"`
	Identity    string  `json:"identity,omitempty"`
	Name        string  `json:"name,omitempty"`
	Visible     bool    `json:"visible"`
	Locked      bool    `json:"locked,omitempty"`
	Selectable  bool    `json:"selectable"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	ScaleX      float64 `json:"scaleX"`
	ScaleY      float64 `json:"scaleY"`
	Rotation    float64 `json:"rotation,omitempty"`
	Opacity     float64 `json:"opacity"`
	Fill        *Color  `json:"fill,omitempty"`
	Stroke      *Color  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Points      []Vec2  `json:"points,omitempty"`
	Text        string  `json:"text,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty"`
	// Source holds PNG-encoded image pixels; encoding/json emits it base64.
	Source   []byte       `json:"source,omitempty"`
	Children []ObjectData `json:"children,omitempty"`
}

// MarshalScene serializes the canvas object set to the snapshot wire format.
// Transient objects are skipped.
func MarshalScene(c *Canvas) ([]byte, error) {
	sd := captureScene(c)
	data, err := json.Marshal(sd)
	if err != nil {
		return nil, fmt.Errorf("easel: marshal scene: %w", err)
	}
	return data, nil
}

// captureScene builds the structured form of the canvas object set.
func captureScene(c *Canvas) *SceneData {
	sd := &SceneData{Version: sceneVersion}
	for _, o := range c.objects {
		if o.Transient {
			continue
		}
		sd.Objects = append(sd.Objects, captureObject(o))
	}
	return sd
}

func captureObject(o *Object) ObjectData {
	od := ObjectData{
		Kind:        o.Kind.String(),
		Identity:    o.Identity,
		Name:        o.DisplayName,
		Visible:     o.Visible,
		Locked:      o.Locked,
		Selectable:  o.Selectable,
		X:           o.X,
		Y:           o.Y,
		Width:       o.Width,
		Height:      o.Height,
		ScaleX:      o.ScaleX,
		ScaleY:      o.ScaleY,
		Rotation:    o.Rotation,
		Opacity:     o.Opacity,
		StrokeWidth: o.StrokeWidth,
		Text:        o.Text,
		FontSize:    o.FontSize,
		Source:      o.source,
	}
	if o.HasFill {
		fill := o.Fill
		od.Fill = &fill
	}
	if o.HasStroke {
		stroke := o.Stroke
		od.Stroke = &stroke
	}
	if len(o.Points) > 0 {
		od.Points = append([]Vec2(nil), o.Points...)
	}
	for _, child := range o.children {
		if child.Transient {
			continue
		}
		od.Children = append(od.Children, captureObject(child))
	}
	return od
}

// UnmarshalScene parses snapshot bytes into their structured form.
func UnmarshalScene(data []byte) (*SceneData, error) {
	var sd SceneData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("easel: unmarshal scene: %w", err)
	}
	if sd.Version != sceneVersion {
		return nil, fmt.Errorf("easel: unsupported scene version %d", sd.Version)
	}
	return &sd, nil
}

// Build constructs a detached object set from the structured form. On error
// no objects are returned; the caller swaps the result in only after success.
func (sd *SceneData) Build() ([]*Object, error) {
	objs := make([]*Object, 0, len(sd.Objects))
	for i := range sd.Objects {
		o, err := buildObject(&sd.Objects[i])
		if err != nil {
			return nil, err
		}
		objs = append(objs, o)
	}
	return objs, nil
}

func buildObject(od *ObjectData) (*Object, error) {
	kind, ok := kindFromName(od.Kind)
	if !ok {
		return nil, fmt.Errorf("easel: unknown object kind %q", od.Kind)
	}
	o := &Object{
		Kind:        kind,
		Identity:    od.Identity,
		DisplayName: od.Name,
		Visible:     od.Visible,
		Locked:      od.Locked,
		Selectable:  od.Selectable,
		X:           od.X,
		Y:           od.Y,
		Width:       od.Width,
		Height:      od.Height,
		ScaleX:      od.ScaleX,
		ScaleY:      od.ScaleY,
		Rotation:    od.Rotation,
		Opacity:     od.Opacity,
		StrokeWidth: od.StrokeWidth,
		Text:        od.Text,
		FontSize:    od.FontSize,
	}
	if od.Fill != nil {
		o.Fill = *od.Fill
		o.HasFill = true
	}
	if od.Stroke != nil {
		o.Stroke = *od.Stroke
		o.HasStroke = true
	}
	if len(od.Points) > 0 {
		o.Points = append([]Vec2(nil), od.Points...)
	}
	if kind == KindImage {
		if len(od.Source) == 0 {
			return nil, fmt.Errorf("easel: image object %q has no source", od.Name)
		}
		img, err := decodeImage(od.Source)
		if err != nil {
			return nil, err
		}
		o.Image = img
		o.source = append([]byte(nil), od.Source...)
	}
	for i := range od.Children {
		child, err := buildObject(&od.Children[i])
		if err != nil {
			return nil, err
		}
		o.children = append(o.children, child)
	}
	return o, nil
}

// decodeImage decodes PNG bytes into an ebiten texture.
func decodeImage(data []byte) (*ebiten.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("easel: decode image: %w", err)
	}
	return ebiten.NewImageFromImage(img), nil
}
