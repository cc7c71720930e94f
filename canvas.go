package easel

// Canvas owns the ordered object list and the editing surface geometry.
// Slice order is draw order: index 0 is drawn first (bottom of the stack).
//
// Canvas is the single source of truth for object lifetime. History keeps
// only serialized snapshots and the layer panel keeps only non-owning
// references; neither ever owns an Object.
type Canvas struct {
	objects []*Object

	width, height int
	background    Color
	hasBackground bool

	// Change notifications, fired after each structural or property change.
	// Nil callbacks are skipped. The Editor installs these to drive
	// auto-commit and layer resync.
	OnAdded    func(*Object)
	OnRemoved  func(*Object)
	OnModified func(*Object)

	dirty bool
}

// NewCanvas creates an empty canvas with the given surface dimensions.
// Panics if either dimension is not positive.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic("easel: canvas dimensions must be positive")
	}
	return &Canvas{width: width, height: height, dirty: true}
}

// Size returns the surface dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetSize resizes the editing surface. Pure geometry change: object content
// is untouched. Panics if either dimension is not positive.
func (c *Canvas) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("easel: canvas dimensions must be positive")
	}
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.dirty = true
}

// Background returns the surface background color and whether one is set.
// hasBackground == false means the surface is transparent.
func (c *Canvas) Background() (Color, bool) {
	return c.background, c.hasBackground
}

// SetBackground sets the surface background color.
func (c *Canvas) SetBackground(col Color) {
	c.background = col
	c.hasBackground = true
	c.dirty = true
}

// ClearBackground makes the surface transparent.
func (c *Canvas) ClearBackground() {
	c.background = Color{}
	c.hasBackground = false
	c.dirty = true
}

// Add appends obj to the top of the stack. Panics if obj is nil.
func (c *Canvas) Add(obj *Object) {
	c.AddAt(obj, len(c.objects))
}

// AddAt inserts obj at the given stack index. Panics if obj is nil or the
// index is out of range.
func (c *Canvas) AddAt(obj *Object, index int) {
	if obj == nil {
		panic("easel: cannot add nil object")
	}
	if index < 0 || index > len(c.objects) {
		panic("easel: object index out of range")
	}
	c.objects = append(c.objects, nil)
	copy(c.objects[index+1:], c.objects[index:])
	c.objects[index] = obj
	c.dirty = true
	if c.OnAdded != nil {
		c.OnAdded(obj)
	}
}

// Remove detaches obj from the canvas. No-op if obj is not present — the
// object may already have been removed by a racing UI gesture.
func (c *Canvas) Remove(obj *Object) {
	i := c.IndexOf(obj)
	if i < 0 {
		return
	}
	copy(c.objects[i:], c.objects[i+1:])
	c.objects[len(c.objects)-1] = nil
	c.objects = c.objects[:len(c.objects)-1]
	c.dirty = true
	if c.OnRemoved != nil {
		c.OnRemoved(obj)
	}
}

// MoveTo moves obj to the given stack index, shifting the objects between.
// No-op if obj is not present. Panics if the index is out of range.
func (c *Canvas) MoveTo(obj *Object, index int) {
	if index < 0 || index >= len(c.objects) {
		panic("easel: object index out of range")
	}
	oldIndex := c.IndexOf(obj)
	if oldIndex < 0 || oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(c.objects[oldIndex:], c.objects[oldIndex+1:index+1])
	} else {
		copy(c.objects[index+1:], c.objects[index:oldIndex])
	}
	c.objects[index] = obj
	c.dirty = true
	if c.OnModified != nil {
		c.OnModified(obj)
	}
}

// Objects returns the object list in draw order. The returned slice MUST NOT
// be mutated by the caller.
func (c *Canvas) Objects() []*Object {
	return c.objects
}

// Len returns the number of objects on the canvas.
func (c *Canvas) Len() int {
	return len(c.objects)
}

// ObjectAt returns the object at the given stack index.
func (c *Canvas) ObjectAt(index int) *Object {
	return c.objects[index]
}

// IndexOf returns obj's stack index, or -1 if it is not on the canvas.
func (c *Canvas) IndexOf(obj *Object) int {
	for i, o := range c.objects {
		if o == obj {
			return i
		}
	}
	return -1
}

// NotifyModified signals that obj's properties were mutated in place.
// Call after bulk-setting fields directly so observers (auto-commit, layer
// panel) see the change.
func (c *Canvas) NotifyModified(obj *Object) {
	c.dirty = true
	if c.OnModified != nil {
		c.OnModified(obj)
	}
}

// replaceAll swaps the entire object set, firing OnRemoved for every old
// object and OnAdded for every new one. Used by the restore protocol: the
// caller guarantees objs is a fully-built detached set.
func (c *Canvas) replaceAll(objs []*Object) {
	old := c.objects
	c.objects = make([]*Object, 0, len(objs))
	c.dirty = true
	if c.OnRemoved != nil {
		for _, o := range old {
			c.OnRemoved(o)
		}
	}
	for _, o := range objs {
		c.Add(o)
	}
}

// Invalidate marks the canvas as needing a full redraw.
func (c *Canvas) Invalidate() {
	c.dirty = true
}

// TakeDirty reports whether a redraw is needed and clears the flag.
func (c *Canvas) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}
