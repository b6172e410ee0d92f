package puzzle

import (
	"fmt"

	"github.com/termcrack/termcrack/internal/dict"
	"github.com/termcrack/termcrack/internal/rng"
)

// Generate picks a goal word and a decoy set satisfying the tier profile.
// The returned slice holds the goal first, then decoys in tier order.
//
// The ranked stream is walked once, left to right: a candidate short of the
// current tier's minimum distance is consumed and never retried against a
// later tier, even when it would satisfy one. Running out of candidates
// before the profile fills means the dictionary chunk is too small for the
// profile; that is a configuration bug rather than user input, so it
// panics.
func Generate(chunk *dict.Chunk, tiers [4]Tier, src rng.Source) (words []string, goal string) {
	total := 1
	for _, t := range tiers {
		total += t.Count
	}

	goal = chunk.RandomWord(src)
	words = make([]string, 0, total)
	words = append(words, goal)

	remaining := tiers
	tier := 0
	iter := chunk.RankedByDistance(goal)
	for tier < len(remaining) {
		word, dist, ok := iter.Next()
		if !ok {
			break // out of candidates
		}

		if dist >= remaining[tier].MinDist {
			words = append(words, word)
			remaining[tier].Count--
			if remaining[tier].Count == 0 {
				tier++
			}
		}
	}

	if len(words) != total {
		panic(fmt.Sprintf("puzzle: generated %d of %d words; dictionary chunk too small for profile", len(words), total))
	}
	return words, goal
}

// Shuffle randomizes word order in place by repeatedly swapping the front
// slot with a random one. The swap count is a good-enough mixing heuristic
// for a dozen words.
func Shuffle(words []string, src rng.Source) {
	const swaps = 100
	for i := 0; i < swaps; i++ {
		j := src.Range(0, len(words))
		words[0], words[j] = words[j], words[0]
	}
}
