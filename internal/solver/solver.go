// Package solver narrows a password candidate list using per-guess
// character-match counts, the companion utility to the cracking game.
package solver

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/termcrack/termcrack/internal/dict"
	"github.com/termcrack/termcrack/internal/strutil"
)

// Validation failures, reported before a narrowing session starts.
var (
	ErrEmptyInput      = errors.New("solver: empty candidate list")
	ErrUnequalLength   = errors.New("solver: candidates differ in length")
	ErrNotInDictionary = errors.New("solver: candidate is not a dictionary word")
	ErrUnknownGuess    = errors.New("solver: guess not in candidate list")
)

// Guess asserts that the hidden solution shares exactly CharCount
// same-position characters with Word, ignoring case.
type Guess struct {
	Word      string
	CharCount int
}

// LoadCandidates reads a newline-delimited candidate list from path,
// skipping blank lines.
func LoadCandidates(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening candidate file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading candidate file: %w", err)
	}
	return words, nil
}

// RequiredLength returns the shared word length of a raw candidate list.
func RequiredLength(words []string) (int, error) {
	if len(words) == 0 {
		return 0, ErrEmptyInput
	}

	required := len(words[0])
	for _, w := range words {
		if len(w) != required {
			return 0, fmt.Errorf("%w: %q is not %d characters", ErrUnequalLength, w, required)
		}
	}
	return required, nil
}

// ValidateCandidates checks a raw candidate list: non-empty, every word the
// same length, and every word present in chunk.
func ValidateCandidates(words []string, chunk *dict.Chunk) error {
	if _, err := RequiredLength(words); err != nil {
		return err
	}

	for _, w := range words {
		if !chunk.Contains(w) {
			return fmt.Errorf("%w: %q", ErrNotInDictionary, w)
		}
	}
	return nil
}

// Filter returns the candidates whose match count against guess.Word equals
// guess.CharCount. Retained candidates keep their relative order.
func Filter(guess Guess, candidates []string) []string {
	var kept []string
	for _, c := range candidates {
		if strutil.MatchingCharCount(c, guess.Word) == guess.CharCount {
			kept = append(kept, c)
		}
	}
	return kept
}

// Session tracks one narrowing run: the full validated candidate list and
// the remaining set after every applied guess. The remaining set only
// shrinks.
type Session struct {
	original  []string
	remaining []string
}

// NewSession validates words against chunk, checks every pre-supplied guess
// against the full list, then applies those guesses in order.
func NewSession(words []string, chunk *dict.Chunk, known []Guess) (*Session, error) {
	if err := ValidateCandidates(words, chunk); err != nil {
		return nil, err
	}

	for _, g := range known {
		if !contains(words, g.Word) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGuess, g.Word)
		}
	}

	s := &Session{original: words, remaining: words}
	for _, g := range known {
		s.remaining = Filter(g, s.remaining)
	}
	return s, nil
}

// Apply narrows the remaining set with one interactive guess. The guess
// must name a word still in the remaining set.
func (s *Session) Apply(g Guess) error {
	if !contains(s.remaining, g.Word) {
		return fmt.Errorf("%w: %q", ErrUnknownGuess, g.Word)
	}
	s.remaining = Filter(g, s.remaining)
	return nil
}

// Original returns the full validated candidate list.
func (s *Session) Original() []string { return s.original }

// Remaining returns the current candidate set.
func (s *Session) Remaining() []string { return s.remaining }

// Solved reports whether the candidate set has narrowed to at most one
// word.
func (s *Session) Solved() bool { return len(s.remaining) <= 1 }

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
