package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termcrack/termcrack/internal/cursor"
)

// testGrid is the small board the movement diagrams below are drawn on:
// two 4x3 panes, addresses 0-11 in pane 0 and 12-23 in pane 1.
var testGrid = cursor.Grid{Width: 4, Height: 3, Panes: 2}

func moveAndRefit(sel cursor.Selection, dir cursor.Direction, words []string, offsets []int) cursor.Selection {
	sel = cursor.Move(sel, dir, testGrid)
	return cursor.Refit(sel, words, offsets, testGrid)
}

func TestSingleCharMoveNext(t *testing.T) {
	// .... ....
	// .abc .xyz
	// .... ....
	//  ^^
	words := []string{"abc", "xyz"}
	offsets := []int{5, 17}

	got := moveAndRefit(cursor.Selection{Pane: 0, Row: 2, Col: 1, Len: 1}, cursor.Right, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 0, Row: 2, Col: 2, Len: 1}, got)
}

func TestSingleCharMoveAcrossPanesRight(t *testing.T) {
	// .... ....
	// .abc .xyz
	// .... ....
	//    ^ ^
	words := []string{"abc", "xyz"}
	offsets := []int{5, 17}

	got := moveAndRefit(cursor.Selection{Pane: 0, Row: 2, Col: 3, Len: 1}, cursor.Right, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 1, Row: 2, Col: 0, Len: 1}, got)
}

func TestSingleCharMoveAcrossPanesLeft(t *testing.T) {
	// .... ....
	// .abc .xyz
	// .... ....
	// ^       ^
	words := []string{"abc", "xyz"}
	offsets := []int{5, 17}

	got := moveAndRefit(cursor.Selection{Pane: 0, Row: 2, Col: 0, Len: 1}, cursor.Left, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 1, Row: 2, Col: 3, Len: 1}, got)
}

func TestMoveWrapVertical(t *testing.T) {
	//        v-start
	// .... ....
	// .abc .xyz
	// .... ....
	//        ^-end
	words := []string{"abc", "xyz"}
	offsets := []int{5, 17}

	got := moveAndRefit(cursor.Selection{Pane: 1, Row: 0, Col: 2, Len: 1}, cursor.Up, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 1, Row: 2, Col: 2, Len: 1}, got)
}

func TestWordMoveRightSkipsSelection(t *testing.T) {
	// v  v
	// abc. ....
	// .... .xyz
	// .... ....
	words := []string{"abc", "xyz"}
	offsets := []int{0, 17}

	got := moveAndRefit(cursor.Selection{Pane: 0, Row: 0, Col: 0, Len: 3}, cursor.Right, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 0, Row: 0, Col: 3, Len: 1}, got)
}

func TestWordMoveLeft(t *testing.T) {
	// abc. ....
	// .... .xyz
	// .... ^^..
	words := []string{"abc", "xyz"}
	offsets := []int{0, 17}

	got := moveAndRefit(cursor.Selection{Pane: 1, Row: 1, Col: 1, Len: 3}, cursor.Left, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 1, Row: 1, Col: 0, Len: 1}, got)
}

func TestMoveOffWrappedWord(t *testing.T) {
	//   v  v
	// ..ab ....
	// c... .xyz
	// .... ....
	words := []string{"abc", "xyz"}
	offsets := []int{2, 17}

	got := moveAndRefit(cursor.Selection{Pane: 0, Row: 0, Col: 2, Len: 3}, cursor.Right, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 1, Row: 0, Col: 0, Len: 1}, got)
}

func TestMoveUpIntoWordSelection(t *testing.T) {
	//        v-start
	// .... ....
	// .abc ....
	// .... .xyz
	//       ^-end
	words := []string{"abc", "xyz"}
	offsets := []int{5, 21}

	got := moveAndRefit(cursor.Selection{Pane: 1, Row: 0, Col: 2, Len: 1}, cursor.Up, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 1, Row: 2, Col: 1, Len: 3}, got)
}

func TestMoveDownIntoWordSelection(t *testing.T) {
	// .... ....
	// .abc ..v-start
	// .... .xyz
	//       ^-end
	words := []string{"abc", "xyz"}
	offsets := []int{5, 21}

	got := moveAndRefit(cursor.Selection{Pane: 1, Row: 1, Col: 2, Len: 1}, cursor.Down, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 1, Row: 2, Col: 1, Len: 3}, got)
}

func TestMoveLeftIntoCrossPaneWordSelection(t *testing.T) {
	//       v-start
	// .... z...
	// .abc ....
	// ..xy ....
	//   ^-end
	words := []string{"abc", "xyz"}
	offsets := []int{5, 10}

	got := moveAndRefit(cursor.Selection{Pane: 1, Row: 0, Col: 1, Len: 1}, cursor.Left, words, offsets)

	require.Equal(t, cursor.Selection{Pane: 0, Row: 2, Col: 2, Len: 3}, got)
}

func TestRefitLeavesNonWordCellsAlone(t *testing.T) {
	words := []string{"abc"}
	offsets := []int{5}

	start := cursor.Selection{Pane: 1, Row: 2, Col: 3, Len: 1}
	got := cursor.Refit(start, words, offsets, testGrid)

	require.Equal(t, start, got)
}

func TestTrySelect(t *testing.T) {
	words := []string{"abc", "xyz"}
	offsets := []int{5, 17}

	// Exact offset and full length: the refit contract.
	word, ok := cursor.TrySelect(cursor.Selection{Pane: 0, Row: 1, Col: 1, Len: 3}, words, offsets, testGrid)
	require.True(t, ok)
	require.Equal(t, "abc", word)

	// Mid-word address is not selectable.
	_, ok = cursor.TrySelect(cursor.Selection{Pane: 0, Row: 1, Col: 2, Len: 1}, words, offsets, testGrid)
	require.False(t, ok)

	// Right address but single-cell length is not selectable either.
	_, ok = cursor.TrySelect(cursor.Selection{Pane: 0, Row: 1, Col: 1, Len: 1}, words, offsets, testGrid)
	require.False(t, ok)

	// Filler cell: nothing there.
	_, ok = cursor.TrySelect(cursor.Selection{Pane: 1, Row: 2, Col: 3, Len: 1}, words, offsets, testGrid)
	require.False(t, ok)
}

func TestAddress(t *testing.T) {
	require.Equal(t, 0, cursor.Selection{}.Address(testGrid))
	require.Equal(t, 17, cursor.Selection{Pane: 1, Row: 1, Col: 1, Len: 1}.Address(testGrid))
	require.Equal(t, 23, cursor.Selection{Pane: 1, Row: 2, Col: 3, Len: 1}.Address(testGrid))
}
