package easel

import "testing"

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(640, 480)
	w, h := c.Size()
	if w != 640 || h != 480 {
		t.Errorf("Size() = %dx%d, want 640x480", w, h)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, has := c.Background(); has {
		t.Error("new canvas should have no background")
	}
}

func TestCanvasAddOrder(t *testing.T) {
	c := NewCanvas(100, 100)
	a := NewRect("a", 0, 0, 1, 1)
	b := NewRect("b", 0, 0, 1, 1)
	c.Add(a)
	c.Add(b)

	if c.IndexOf(a) != 0 || c.IndexOf(b) != 1 {
		t.Errorf("IndexOf = %d, %d, want 0, 1", c.IndexOf(a), c.IndexOf(b))
	}
}

func TestCanvasAddAt(t *testing.T) {
	c := NewCanvas(100, 100)
	a := NewRect("a", 0, 0, 1, 1)
	b := NewRect("b", 0, 0, 1, 1)
	mid := NewRect("mid", 0, 0, 1, 1)
	c.Add(a)
	c.Add(b)
	c.AddAt(mid, 1)

	want := []*Object{a, mid, b}
	for i, w := range want {
		if c.ObjectAt(i) != w {
			t.Errorf("objects[%d] = %q, want %q", i, c.ObjectAt(i).DisplayName, w.DisplayName)
		}
	}
}

func TestCanvasAddNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add(nil) should panic")
		}
	}()
	NewCanvas(100, 100).Add(nil)
}

func TestCanvasRemove(t *testing.T) {
	c := NewCanvas(100, 100)
	a := NewRect("a", 0, 0, 1, 1)
	b := NewRect("b", 0, 0, 1, 1)
	c.Add(a)
	c.Add(b)

	c.Remove(a)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if c.IndexOf(a) != -1 {
		t.Error("removed object should not be found")
	}

	// Removing an absent object is a silent no-op.
	c.Remove(a)
	if c.Len() != 1 {
		t.Errorf("Len() = %d after double remove, want 1", c.Len())
	}
}

func TestCanvasMoveTo(t *testing.T) {
	c := NewCanvas(100, 100)
	a := NewRect("a", 0, 0, 1, 1)
	b := NewRect("b", 0, 0, 1, 1)
	d := NewRect("d", 0, 0, 1, 1)
	c.Add(a)
	c.Add(b)
	c.Add(d)

	c.MoveTo(a, 2)
	want := []*Object{b, d, a}
	for i, w := range want {
		if c.ObjectAt(i) != w {
			t.Errorf("after up-move, objects[%d] = %q, want %q", i, c.ObjectAt(i).DisplayName, w.DisplayName)
		}
	}

	c.MoveTo(a, 0)
	want = []*Object{a, b, d}
	for i, w := range want {
		if c.ObjectAt(i) != w {
			t.Errorf("after down-move, objects[%d] = %q, want %q", i, c.ObjectAt(i).DisplayName, w.DisplayName)
		}
	}
}

func TestCanvasCallbacks(t *testing.T) {
	c := NewCanvas(100, 100)
	var added, removed, modified *Object
	c.OnAdded = func(o *Object) { added = o }
	c.OnRemoved = func(o *Object) { removed = o }
	c.OnModified = func(o *Object) { modified = o }

	a := NewRect("a", 0, 0, 1, 1)
	c.Add(a)
	if added != a {
		t.Error("OnAdded should fire with the added object")
	}

	a.X = 42
	c.NotifyModified(a)
	if modified != a {
		t.Error("OnModified should fire with the modified object")
	}

	c.Remove(a)
	if removed != a {
		t.Error("OnRemoved should fire with the removed object")
	}
}

func TestCanvasReplaceAllFiresEvents(t *testing.T) {
	c := NewCanvas(100, 100)
	old := NewRect("old", 0, 0, 1, 1)
	c.Add(old)

	var removed, added []string
	c.OnRemoved = func(o *Object) { removed = append(removed, o.DisplayName) }
	c.OnAdded = func(o *Object) { added = append(added, o.DisplayName) }

	c.replaceAll([]*Object{NewRect("n1", 0, 0, 1, 1), NewRect("n2", 0, 0, 1, 1)})

	if len(removed) != 1 || removed[0] != "old" {
		t.Errorf("removed = %v, want [old]", removed)
	}
	if len(added) != 2 || added[0] != "n1" || added[1] != "n2" {
		t.Errorf("added = %v, want [n1 n2]", added)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCanvasDirtyTracking(t *testing.T) {
	c := NewCanvas(100, 100)
	if !c.TakeDirty() {
		t.Error("new canvas should start dirty")
	}
	if c.TakeDirty() {
		t.Error("TakeDirty should clear the flag")
	}

	c.Add(NewRect("a", 0, 0, 1, 1))
	if !c.TakeDirty() {
		t.Error("Add should mark dirty")
	}

	c.Invalidate()
	if !c.TakeDirty() {
		t.Error("Invalidate should mark dirty")
	}
}

func TestCanvasSetSizeNoopWhenUnchanged(t *testing.T) {
	c := NewCanvas(100, 100)
	c.TakeDirty()
	c.SetSize(100, 100)
	if c.TakeDirty() {
		t.Error("SetSize with identical dimensions should not mark dirty")
	}
}

func TestCanvasBackground(t *testing.T) {
	c := NewCanvas(100, 100)
	c.SetBackground(Color{1, 0, 0, 1})
	bg, has := c.Background()
	if !has || bg != (Color{1, 0, 0, 1}) {
		t.Errorf("Background() = %v, %v, want red, true", bg, has)
	}
	c.ClearBackground()
	if _, has := c.Background(); has {
		t.Error("ClearBackground should remove the background")
	}
}
