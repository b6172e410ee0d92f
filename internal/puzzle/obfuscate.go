package puzzle

import (
	"fmt"

	"github.com/termcrack/termcrack/internal/rng"
)

// Filler characters are drawn from this printable ASCII range.
const (
	fillerLow  = '#'
	fillerHigh = '.'
)

// Obfuscate embeds words inside a buffer of targetSize random filler
// characters and reports where each word landed. Offsets come back in input
// order and satisfy buffer[off:off+len(word)] == word for every pair.
//
// Words are first packed contiguously in reverse input order, each word's
// offset being the combined length of the words after it. Every filler
// character is then inserted ahead of a randomly chosen word (or past the
// rightmost one), pushing that word and everything beyond it one cell
// right. A targetSize below the combined word length would need negative
// filler and panics.
func Obfuscate(words []string, targetSize int, src rng.Source) (string, []int) {
	wordTotal := 0
	for _, w := range words {
		wordTotal += len(w)
	}
	if targetSize < wordTotal {
		panic(fmt.Sprintf("puzzle: target size %d cannot hold %d word characters", targetSize, wordTotal))
	}

	offsets := make([]int, len(words))
	for i := len(words) - 2; i >= 0; i-- {
		offsets[i] = offsets[i+1] + len(words[i+1])
	}

	// offsets is descending, so "the chosen word and everything right of it"
	// is a prefix of the slice. point == len(words) bumps nothing: the
	// filler lands after the rightmost word.
	for n := targetSize - wordTotal; n > 0; n-- {
		point := src.Range(0, len(words)+1)
		for i := 0; i <= len(words)-1-point; i++ {
			offsets[i]++
		}
	}

	buf := make([]byte, targetSize)
	for i := range buf {
		buf[i] = byte(src.Range(fillerLow, fillerHigh))
	}
	for i, w := range words {
		copy(buf[offsets[i]:], w)
	}

	return string(buf), offsets
}
