package easel

import (
	"fmt"
	"time"
)

// restore applies a snapshot to the live canvas. The protocol, in order:
//
//  1. Deserialize the snapshot into a detached object set. Any failure
//     aborts here, before the canvas has been touched.
//  2. Resize the surface if the snapshot's dimensions differ (geometry only).
//  3. Apply the snapshot's background if it differs.
//  4. Replace the entire object set with the detached one — a full replace,
//     never a merge. Tags come through exactly as serialized.
//  5. Mark the surface for a full redraw.
//  6. Emit the restored notification carrying the new dimensions.
//
// The restore state machine is active for the whole protocol, including the
// change events fired by the replace in step 4, so re-entrant commits are
// ignored. The state returns to idle on every exit path.
func (h *History) restore(snap *Snapshot) error {
	h.state = restoreActive
	defer func() { h.state = restoreIdle }()

	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}

	sd, err := UnmarshalScene(snap.scene)
	if err != nil {
		return fmt.Errorf("restore %q: %w", snap.label, err)
	}
	objs, err := sd.Build()
	if err != nil {
		return fmt.Errorf("restore %q: %w", snap.label, err)
	}

	var buildTime time.Duration
	if globalDebug {
		buildTime = time.Since(t0)
		t0 = time.Now()
	}

	c := h.canvas
	if w, hgt := c.Size(); w != snap.width || hgt != snap.height {
		c.SetSize(snap.width, snap.height)
	}

	bg, hasBg := c.Background()
	if snap.hasBackground != hasBg || snap.background != bg {
		if snap.hasBackground {
			c.SetBackground(snap.background)
		} else {
			c.ClearBackground()
		}
	}

	c.replaceAll(objs)
	c.Invalidate()

	if globalDebug {
		debugLogf("restore %q: build: %v | apply: %v | objects: %d",
			snap.label, buildTime, time.Since(t0), len(objs))
	}

	if h.OnRestored != nil {
		h.OnRestored(snap.width, snap.height)
	}
	return nil
}
