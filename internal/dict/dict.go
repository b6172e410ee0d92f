// Package dict loads and queries fixed-length word sets. Word lists are
// partitioned by length up front because a puzzle or solver session only
// ever works with words of a single length.
package dict

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/termcrack/termcrack/internal/rng"
	"github.com/termcrack/termcrack/internal/strutil"
)

// Chunk holds every known word of a single length. It is built once per
// session and immutable afterwards.
type Chunk struct {
	wordLen int
	words   []string
}

// NewChunk builds a chunk from an in-memory word list. Every word must have
// exactly wordLen characters.
func NewChunk(wordLen int, words []string) (*Chunk, error) {
	for _, w := range words {
		if len(w) != wordLen {
			return nil, fmt.Errorf("dict: %q is not %d characters", w, wordLen)
		}
	}
	return &Chunk{wordLen: wordLen, words: words}, nil
}

// Load reads the word list for wordLen from dir. Lists are keyed by length,
// one word per line; blank lines are skipped. An absent or empty list is an
// error, since a session cannot run without one.
func Load(dir string, wordLen int) (*Chunk, error) {
	path := filepath.Join(dir, fmt.Sprintf("%d_char_words_alpha.txt", wordLen))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if len(line) != wordLen {
			return nil, fmt.Errorf("dict: %s holds %q, want %d-character words", path, line, wordLen)
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("dict: no %d-character words in %s", wordLen, path)
	}
	return &Chunk{wordLen: wordLen, words: words}, nil
}

// WordLen returns the length every word in the chunk shares.
func (c *Chunk) WordLen() int { return c.wordLen }

// Size returns the number of words in the chunk.
func (c *Chunk) Size() int { return len(c.words) }

// Contains reports whether word is in the chunk. word must match the
// chunk's word length; a mismatch is a caller bug.
func (c *Chunk) Contains(word string) bool {
	if len(word) != c.wordLen {
		panic(fmt.Sprintf("dict: membership test for %q against %d-character chunk", word, c.wordLen))
	}
	for _, w := range c.words {
		if w == word {
			return true
		}
	}
	return false
}

// RandomWord returns a uniformly selected word from the chunk.
func (c *Chunk) RandomWord(src rng.Source) string {
	return rng.Pick(c.words, src)
}

// RankedByDistance returns a fresh single-use iterator over the chunk,
// ordered by case-insensitive hamming distance to ref: every distance-1
// word in chunk order, then every distance-2 word, and so on up to the word
// length. Duplicates of ref (distance 0) are never produced. Each distance
// pass rescans the whole chunk; the chunks are small enough that the plain
// scan beats sorting up front, so keep it that way.
func (c *Chunk) RankedByDistance(ref string) *RankedIter {
	return &RankedIter{chunk: c, ref: ref, dist: 1}
}

// RankedIter walks a chunk in order of increasing distance from a reference
// word. It is finite and not restartable.
type RankedIter struct {
	chunk *Chunk
	ref   string
	dist  int // distance currently being scanned for
	index int // next chunk index to inspect at that distance
}

// Next returns the next (word, distance) pair, or ok=false once every
// distance up to the word length has been scanned.
func (it *RankedIter) Next() (word string, dist int, ok bool) {
	if it.chunk.Size() == 0 {
		return "", 0, false
	}

	for it.dist <= it.chunk.wordLen {
		i, d := it.index, it.dist

		it.index++
		if it.index >= len(it.chunk.words) {
			it.index = 0
			it.dist++
		}

		candidate := it.chunk.words[i]
		if strutil.HammingDistance(candidate, it.ref) == d {
			return candidate, d, true
		}
	}
	return "", 0, false
}
