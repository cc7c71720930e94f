package easel

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawHistoryHUD renders a small history readout at (x, y) on dst using the
// debug font. Intended for development builds and the bundled examples, not
// for end-user UI.
func DrawHistoryHUD(dst *ebiten.Image, h *History, x, y int) {
	info := h.Info()

	var b strings.Builder
	fmt.Fprintf(&b, "history: %d/%d", info.Cursor+1, info.TotalStates)
	if info.CurrentLabel != "" {
		fmt.Fprintf(&b, " [%s]", info.CurrentLabel)
	}
	b.WriteByte('\n')
	if info.CanUndo {
		b.WriteString("undo: yes  ")
	} else {
		b.WriteString("undo: no   ")
	}
	if info.CanRedo {
		b.WriteString("redo: yes")
	} else {
		b.WriteString("redo: no")
	}
	if h.Restoring() {
		b.WriteString("  RESTORING")
	}

	ebitenutil.DebugPrintAt(dst, b.String(), x, y)
}
