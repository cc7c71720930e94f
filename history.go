package easel

import (
	"log"
	"time"
)

// DefaultCapacity is the default bound on the history sequence.
const DefaultCapacity = 50

// Snapshot is an immutable point-in-time capture of editable state: the
// serialized object set plus the surface geometry it was captured under.
// Snapshots are only ever produced by History.Commit and never mutated.
type Snapshot struct {
	scene         []byte
	label         string
	timestamp     time.Time
	width, height int
	background    Color
	hasBackground bool
}

// Label returns the short description of the action that produced this snapshot.
func (s *Snapshot) Label() string { return s.label }

// Timestamp returns the snapshot's creation time.
func (s *Snapshot) Timestamp() time.Time { return s.timestamp }

// Size returns the surface dimensions at capture time.
func (s *Snapshot) Size() (width, height int) { return s.width, s.height }

// Scene returns the serialized object set. The returned slice MUST NOT be
// mutated by the caller.
func (s *Snapshot) Scene() []byte { return s.scene }

// Info is the subscriber-facing summary of the history sequence.
type Info struct {
	TotalStates  int
	Cursor       int
	CanUndo      bool
	CanRedo      bool
	CurrentLabel string
}

// restoreState is the restore protocol's state machine. Only two states are
// reachable; failures return to restoreIdle on every exit path.
type restoreState uint8

const (
	restoreIdle restoreState = iota
	restoreActive
)

// History maintains the undo/redo sequence and its cursor.
//
// Invariants: -1 <= cursor < len(snapshots), cursor == -1 only when empty;
// committing truncates everything after the cursor; the sequence never
// exceeds capacity (the oldest snapshot is evicted, preserving the cursor's
// relative position).
type History struct {
	canvas    *Canvas
	snapshots []*Snapshot
	cursor    int
	capacity  int

	subscribers []func(Info)
	state       restoreState

	// OnRestored fires after a snapshot has been fully applied, carrying the
	// restored surface dimensions so size-dependent components (viewport fit)
	// can recompute. Nil is skipped.
	OnRestored func(width, height int)
}

// NewHistory creates an empty history bound to the given canvas.
// A capacity <= 0 selects DefaultCapacity.
func NewHistory(c *Canvas, capacity int) *History {
	if c == nil {
		panic("easel: history needs a canvas")
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{canvas: c, cursor: -1, capacity: capacity}
}

// Capacity returns the history bound.
func (h *History) Capacity() int { return h.capacity }

// Restoring reports whether a restore is currently in progress. Callers
// should disable undo/redo controls while true.
func (h *History) Restoring() bool { return h.state == restoreActive }

// Commit captures the current canvas state as a new snapshot labeled with
// the action that produced it. Any snapshots after the cursor (the redo
// branch) are discarded first. No-op while a restore is in progress — the
// canvas change events fired mid-restore must not pollute the sequence.
//
// Commit always succeeds; there are no error conditions.
func (h *History) Commit(label string) {
	if h.state == restoreActive {
		return
	}

	scene, err := MarshalScene(h.canvas)
	if err != nil {
		// Unreachable with well-formed objects; treat as a programming error
		// but keep the sequence intact.
		log.Printf("easel: commit %q: %v", label, err)
		return
	}

	// Discard the redo branch.
	for i := h.cursor + 1; i < len(h.snapshots); i++ {
		h.snapshots[i] = nil
	}
	h.snapshots = h.snapshots[:h.cursor+1]

	bg, hasBg := h.canvas.Background()
	w, hgt := h.canvas.Size()
	h.snapshots = append(h.snapshots, &Snapshot{
		scene:         scene,
		label:         label,
		timestamp:     time.Now(),
		width:         w,
		height:        hgt,
		background:    bg,
		hasBackground: hasBg,
	})
	h.cursor = len(h.snapshots) - 1

	// Bounded capacity: evict the single oldest snapshot and pull the cursor
	// back so the relative position of "current" is unchanged.
	if len(h.snapshots) > h.capacity {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots[len(h.snapshots)-1] = nil
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
		h.cursor--
	}

	if globalDebug {
		debugCheckHistory(h)
	}
	h.notify()
}

// Undo moves the cursor one step back and restores that snapshot.
// Returns false when there is nothing to undo, when a restore is already in
// progress, or when the restore itself fails (cursor unchanged in that case).
func (h *History) Undo() bool {
	if h.state == restoreActive {
		return false
	}
	if h.cursor <= 0 {
		return false
	}
	h.cursor--
	if err := h.restore(h.snapshots[h.cursor]); err != nil {
		h.cursor++
		log.Printf("easel: undo: %v", err)
		return false
	}
	h.notify()
	return true
}

// Redo moves the cursor one step forward and restores that snapshot.
// Symmetric with Undo.
func (h *History) Redo() bool {
	if h.state == restoreActive {
		return false
	}
	if h.cursor >= len(h.snapshots)-1 {
		return false
	}
	h.cursor++
	if err := h.restore(h.snapshots[h.cursor]); err != nil {
		h.cursor--
		log.Printf("easel: redo: %v", err)
		return false
	}
	h.notify()
	return true
}

// Clear empties the sequence and resets the cursor. Used on "new document".
func (h *History) Clear() {
	for i := range h.snapshots {
		h.snapshots[i] = nil
	}
	h.snapshots = h.snapshots[:0]
	h.cursor = -1
	h.notify()
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Cursor returns the index of the currently displayed snapshot, or -1.
func (h *History) Cursor() int { return h.cursor }

// Current returns the snapshot at the cursor, or nil when empty.
func (h *History) Current() *Snapshot {
	if h.cursor < 0 {
		return nil
	}
	return h.snapshots[h.cursor]
}

// Info returns the subscriber-facing summary of the sequence.
func (h *History) Info() Info {
	info := Info{
		TotalStates: len(h.snapshots),
		Cursor:      h.cursor,
		CanUndo:     h.cursor > 0,
		CanRedo:     h.cursor < len(h.snapshots)-1,
	}
	if h.cursor >= 0 {
		info.CurrentLabel = h.snapshots[h.cursor].label
	}
	return info
}

// Subscribe registers a callback invoked synchronously after every
// state-count-affecting operation (commit, undo, redo, clear). Delivery
// order is insertion order. There is no unsubscribe.
func (h *History) Subscribe(fn func(Info)) {
	if fn == nil {
		panic("easel: cannot subscribe nil callback")
	}
	h.subscribers = append(h.subscribers, fn)
}

func (h *History) notify() {
	info := h.Info()
	for _, fn := range h.subscribers {
		fn(info)
	}
}
