// Package strutil holds the character-match helpers shared by the puzzle
// generator and the solver.
package strutil

import "fmt"

// MatchingCharCount returns the number of positions where a and b hold the
// same character, ignoring ASCII case. The strings must have equal length;
// a mismatch is a caller bug.
func MatchingCharCount(a, b string) int {
	if len(a) != len(b) {
		panic(fmt.Sprintf("strutil: comparing %q and %q of different lengths", a, b))
	}

	count := 0
	for i := 0; i < len(a); i++ {
		if lower(a[i]) == lower(b[i]) {
			count++
		}
	}
	return count
}

// HammingDistance returns the number of positions where a and b differ,
// ignoring ASCII case.
func HammingDistance(a, b string) int {
	return len(a) - MatchingCharCount(a, b)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
