// Package cursor implements the selection state machine over the character
// panes of the puzzle board. It is UI-agnostic: the TUI feeds it movement
// inputs and reads back the selection to highlight.
package cursor

// Grid describes the board: Panes rectangular panes of Width by Height
// cells, treated as one contiguous address space with pane 0 first.
type Grid struct {
	Width  int
	Height int
	Panes  int
}

// PaneSize returns the number of cells in a single pane.
func (g Grid) PaneSize() int { return g.Width * g.Height }

// Size returns the number of cells across all panes.
func (g Grid) Size() int { return g.PaneSize() * g.Panes }

// Selection is the cursor state: a run of Len cells starting at (Pane, Row,
// Col). Len is 1 except when a refit has snapped the cursor onto a word.
type Selection struct {
	Pane int
	Row  int
	Col  int
	Len  int
}

// Address returns the linear address of the selection start.
func (s Selection) Address(g Grid) int {
	return s.Pane*g.PaneSize() + s.Row*g.Width + s.Col
}

// Direction is a movement input.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Move applies one movement to sel and returns the new single-cell
// selection. Vertical moves wrap within the pane. Horizontal moves carry
// across panes: stepping off the left edge lands on the right edge of the
// previous pane and the other way around. Moving right steps past the whole
// current selection, so a selected word is skipped in one keypress.
func Move(sel Selection, dir Direction, g Grid) Selection {
	colMove, rowMove := 0, 0
	switch dir {
	case Up:
		rowMove = -1
	case Down:
		rowMove = 1
	case Left:
		colMove = -1
	case Right:
		colMove = sel.Len
	}

	col := sel.Col + colMove
	row := sel.Row + rowMove
	pane := sel.Pane

	if col >= g.Width {
		col = 0
		pane++
	} else if col < 0 {
		col = g.Width - 1
		pane--
	}

	if row >= g.Height {
		row = 0
	} else if row < 0 {
		row = g.Height - 1
	}

	if pane >= g.Panes {
		pane = 0
	} else if pane < 0 {
		// The board is a fixed two-pane layout; wrapping left out of
		// pane 0 lands in pane 1.
		pane = 1
	}

	return Selection{Pane: pane, Row: row, Col: col, Len: 1}
}

// Refit snaps sel onto the full span of a word when sel's address falls
// anywhere inside that word's range, and returns sel untouched otherwise.
// Words and offsets are parallel slices whose ranges are disjoint by
// construction. When the hit word began on the previous row, the correction
// steps the row back once, carrying into the previous pane from row 0.
//
// Known limitation: a word that crosses a row boundary and a pane boundary
// at the same time is not relocated correctly by this single-step
// correction.
func Refit(sel Selection, words []string, offsets []int, g Grid) Selection {
	addr := sel.Address(g)

	for i, word := range words {
		start, end := offsets[i], offsets[i]+len(word)
		if addr < start || addr >= end {
			continue
		}

		intra := addr - start
		if intra <= sel.Col {
			sel.Col -= intra
		} else {
			// The word began on the previous row.
			if sel.Row > 0 {
				sel.Row--
			} else {
				sel.Row = g.Height - 1
				sel.Pane--
				if sel.Pane < 0 {
					sel.Pane = 1
				}
			}
			sel.Col += g.Width - intra
		}
		sel.Len = len(word)
		break
	}

	return sel
}

// TrySelect reports the word under sel, requiring the refit contract: the
// selection must start exactly at a word's offset and span its full length.
// Any other overlap means the cursor sits mid-word without a refit, which
// is simply not a selectable position.
func TrySelect(sel Selection, words []string, offsets []int, g Grid) (string, bool) {
	addr := sel.Address(g)

	for i, word := range words {
		if addr == offsets[i] && sel.Len == len(word) {
			return word, true
		}
	}
	return "", false
}
