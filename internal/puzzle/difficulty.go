// Package puzzle generates the word set and obfuscated character dump for a
// cracking session.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects the word length and decoy distance profile for a game.
type Difficulty int

const (
	VeryEasy Difficulty = iota
	Easy
	Average
	Hard
	VeryHard
)

// Difficulties lists every difficulty in ascending order, for menus.
var Difficulties = [...]Difficulty{VeryEasy, Easy, Average, Hard, VeryHard}

// ErrUnknownDifficulty reports a difficulty token that matches no alias.
var ErrUnknownDifficulty = errors.New("puzzle: unknown difficulty")

// difficultyAliases maps every accepted spelling, lower-cased, to its
// difficulty.
var difficultyAliases = map[string]Difficulty{
	"veryeasy": VeryEasy,
	"ve":       VeryEasy,
	"easy":     Easy,
	"e":        Easy,
	"average":  Average,
	"a":        Average,
	"hard":     Hard,
	"h":        Hard,
	"veryhard": VeryHard,
	"vh":       VeryHard,
}

// ParseDifficulty resolves a difficulty name or its short alias.
// Matching is case-insensitive and ignores hyphens and underscores, so
// "very-easy", "VeryEasy" and "ve" all resolve to VeryEasy.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.NewReplacer("-", "", "_", "").Replace(s)
	d, ok := difficultyAliases[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// String returns the canonical difficulty name.
func (d Difficulty) String() string {
	switch d {
	case VeryEasy:
		return "VeryEasy"
	case Easy:
		return "Easy"
	case Average:
		return "Average"
	case Hard:
		return "Hard"
	case VeryHard:
		return "VeryHard"
	default:
		return "Unknown"
	}
}

// WordLen returns the puzzle word length played at this difficulty.
func (d Difficulty) WordLen() int {
	switch d {
	case VeryEasy:
		return 4
	case Easy:
		return 6
	case Average:
		return 8
	case Hard:
		return 10
	case VeryHard:
		return 12
	default:
		return 0
	}
}

// Tier is one entry of a distance profile: Count decoys at hamming distance
// of at least MinDist from the goal word.
type Tier struct {
	Count   int
	MinDist int
}

// Tiers returns the four-tier decoy profile for the difficulty. Tiers are
// consumed in order; each must fill completely before the next is
// attempted.
func (d Difficulty) Tiers() [4]Tier {
	var dists [4]int
	switch d {
	case VeryEasy:
		dists = [4]int{1, 2, 3, 4}
	case Easy:
		dists = [4]int{1, 3, 4, 5}
	case Average:
		dists = [4]int{1, 3, 5, 7}
	case Hard:
		dists = [4]int{1, 4, 6, 9}
	case VeryHard:
		dists = [4]int{1, 3, 7, 10}
	}

	return [4]Tier{
		{Count: 1, MinDist: dists[0]},
		{Count: 2, MinDist: dists[1]},
		{Count: 3, MinDist: dists[2]},
		{Count: 5, MinDist: dists[3]},
	}
}
