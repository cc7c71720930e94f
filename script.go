package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an editor script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Text   string  `json:"text,omitempty"`
	Fill   string  `json:"fill,omitempty"`
	Stroke string  `json:"stroke,omitempty"`
	From   string  `json:"from,omitempty"`
	To     string  `json:"to,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Path   string  `json:"path,omitempty"`
}

// editorScript is the top-level JSON structure for an editor script.
type editorScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences editor actions parsed from JSON, for automated exercising
// of a document: adding shapes, undoing, redoing, reordering, exporting.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON editor script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script editorScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("easel: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("easel: parse script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// Len returns the number of steps in the script.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run applies every step to the editor in order. Unknown actions are
// skipped. The first failing step (bad color, failed export) aborts the run.
func (s *Script) Run(ed *Editor) error {
	for i, st := range s.steps {
		if err := applyStep(ed, st); err != nil {
			return fmt.Errorf("easel: script step %d (%s): %w", i, st.Action, err)
		}
	}
	return nil
}

func applyStep(ed *Editor, st scriptStep) error {
	switch st.Action {
	case "add-rect", "add-ellipse":
		var o *Object
		if st.Action == "add-rect" {
			o = NewRect(st.Name, st.X, st.Y, st.W, st.H)
		} else {
			o = NewEllipse(st.Name, st.X, st.Y, st.W, st.H)
		}
		if err := applyStyle(o, st); err != nil {
			return err
		}
		ed.Canvas.Add(o)
	case "add-line":
		o := NewLine(st.Name, st.X, st.Y, st.X+st.W, st.Y+st.H)
		if err := applyStyle(o, st); err != nil {
			return err
		}
		ed.Canvas.Add(o)
	case "add-text":
		o := NewText(st.Name, st.Text, st.H, nil)
		o.X, o.Y = st.X, st.Y
		if err := applyStyle(o, st); err != nil {
			return err
		}
		ed.Canvas.Add(o)
	case "remove":
		if l, ok := findLayerByName(ed, st.Name); ok {
			ed.Canvas.Remove(l.Object)
		}
	case "reorder":
		from, okFrom := findLayerByName(ed, st.From)
		to, okTo := findLayerByName(ed, st.To)
		if okFrom && okTo {
			ed.Reorder(from.Identity, to.Identity)
		}
	case "set-size":
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("invalid size %dx%d", st.Width, st.Height)
		}
		ed.Resize(st.Width, st.Height)
	case "set-background":
		col, err := ParseColor(st.Fill)
		if err != nil {
			return err
		}
		ed.Batch("Background", func() {
			ed.Canvas.SetBackground(col)
		})
	case "undo":
		ed.Undo()
	case "redo":
		ed.Redo()
	case "export":
		path := st.Path
		if path == "" {
			path = ed.ExportName()
		}
		return ed.ExportPNG(path)
	}
	return nil
}

// applyStyle parses the step's fill/stroke colors onto the object.
func applyStyle(o *Object, st scriptStep) error {
	if st.Fill != "" {
		col, err := ParseColor(st.Fill)
		if err != nil {
			return err
		}
		o.Fill = col
		o.HasFill = true
	}
	if st.Stroke != "" {
		col, err := ParseColor(st.Stroke)
		if err != nil {
			return err
		}
		o.Stroke = col
		o.HasStroke = true
		if o.StrokeWidth == 0 {
			o.StrokeWidth = 1
		}
	}
	return nil
}

// findLayerByName resolves a layer by display name or identity, topmost
// match first.
func findLayerByName(ed *Editor, name string) (Layer, bool) {
	if name == "" {
		return Layer{}, false
	}
	for _, l := range ed.Panel.Layers() {
		if l.DisplayName == name || l.Identity == name {
			return l, true
		}
	}
	return Layer{}, false
}
