package dict_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termcrack/termcrack/internal/dict"
	"github.com/termcrack/termcrack/internal/rng"
)

func mustChunk(t *testing.T, wordLen int, words []string) *dict.Chunk {
	t.Helper()
	chunk, err := dict.NewChunk(wordLen, words)
	require.NoError(t, err)
	return chunk
}

func TestNewChunkRejectsWrongLength(t *testing.T) {
	_, err := dict.NewChunk(4, []string{"pens", "pen"})
	require.Error(t, err)
}

func TestContains(t *testing.T) {
	chunk := mustChunk(t, 4, []string{"pens", "pans"})

	require.True(t, chunk.Contains("pens"))
	require.False(t, chunk.Contains("pins"))
	require.Panics(t, func() { chunk.Contains("pen") })
}

func TestRandomWordUsesSource(t *testing.T) {
	chunk := mustChunk(t, 4, []string{"pens", "pans", "pins"})

	require.Equal(t, "pens", chunk.RandomWord(rng.Fixed(0)))
	require.Equal(t, "pins", chunk.RandomWord(rng.Fixed(2)))
}

func TestRankedByDistanceOrdering(t *testing.T) {
	// Distance from "pens": 3, 1, 2, 4, 0, 1, 1, 3.
	chunk := mustChunk(t, 4, []string{
		"adds", "pans", "pils", "dull", "pens", "pins", "pent", "miss",
	})

	type pair struct {
		word string
		dist int
	}
	want := []pair{
		{"pans", 1},
		{"pins", 1},
		{"pent", 1},
		{"pils", 2},
		{"adds", 3},
		{"miss", 3},
		{"dull", 4},
	}

	var got []pair
	iter := chunk.RankedByDistance("pens")
	for {
		word, dist, ok := iter.Next()
		if !ok {
			break
		}
		got = append(got, pair{word, dist})
	}

	require.Equal(t, want, got)
}

func TestRankedByDistanceProperties(t *testing.T) {
	words := []string{"abcd", "abce", "xbcd", "wxyz", "abcd", "dcba"}
	chunk := mustChunk(t, 4, words)

	prev := 0
	seen := 0
	iter := chunk.RankedByDistance("abcd")
	for {
		word, dist, ok := iter.Next()
		if !ok {
			break
		}
		seen++
		require.NotEqual(t, "abcd", word, "distance-0 entries must never be produced")
		require.GreaterOrEqual(t, dist, 1)
		require.LessOrEqual(t, dist, chunk.WordLen())
		require.GreaterOrEqual(t, dist, prev, "distances must be non-decreasing")
		prev = dist
	}

	// Everything except the reference and its duplicate.
	require.Equal(t, len(words)-2, seen)
}

func TestRankedByDistanceSingleUse(t *testing.T) {
	chunk := mustChunk(t, 4, []string{"pens", "pans"})

	iter := chunk.RankedByDistance("pens")
	_, _, ok := iter.Next()
	require.True(t, ok)
	_, _, ok = iter.Next()
	require.False(t, ok)
	_, _, ok = iter.Next()
	require.False(t, ok, "an exhausted iterator must stay exhausted")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "4_char_words_alpha.txt")
	require.NoError(t, os.WriteFile(path, []byte("pens\npans\n\npins\n"), 0o644))

	chunk, err := dict.Load(dir, 4)
	require.NoError(t, err)
	require.Equal(t, 3, chunk.Size())
	require.Equal(t, 4, chunk.WordLen())
	require.True(t, chunk.Contains("pans"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dict.Load(t.TempDir(), 4)
	require.Error(t, err)
}

func TestLoadEmptyList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "6_char_words_alpha.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	_, err := dict.Load(dir, 6)
	require.Error(t, err)
}

func TestLoadRejectsWrongLengthLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "4_char_words_alpha.txt")
	require.NoError(t, os.WriteFile(path, []byte("pens\ntrees\n"), 0o644))

	_, err := dict.Load(dir, 4)
	require.Error(t, err)
}
