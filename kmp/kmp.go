package kmp

// KMP — Knuth–Morris–Pratt substring search
//
// Description:
//
//	The scan walks the text once, left to right, while a second cursor
//	tracks how much of the pattern is currently matched.  On a mismatch
//	the pattern cursor falls back through the failure table instead of
//	rewinding the text, which bounds the whole search by O(n+m).
//
// Algorithm Outline:
//  1. Build the failure table F for the pattern:
//     F[j] = length of the longest proper prefix of pattern[0..=j]
//     that is also a suffix of it; F[0] = 0.
//  2. Scan with cursors i (text) and j (pattern), both starting at 0:
//     match     → if j is the last pattern index, report i-j;
//     otherwise advance j and i.
//     mismatch  → if j > 0, fall back j = F[j-1] without consuming text;
//     else advance i.
//  3. No occurrence once i exhausts the text.
//
// Complexity:
//
//	Time   = O(n+m)
//	Memory = O(m)
//
// Errors:
//   - ErrEmptyPattern — if the pattern is empty.

// FailureTable computes the prefix-suffix fallback table for pattern.
// Entry j holds the length of the longest proper prefix of pattern[0..=j]
// that is also a suffix of it; entry 0 is always 0 and no entry exceeds
// its own index.
//
// Returns ErrEmptyPattern for an empty pattern.
func FailureTable(pattern string) ([]int, error) {
	p := []rune(pattern)
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}

	return failureTable(p), nil
}

// failureTable is the allocation-level core shared with the scanners.
// Precondition: len(p) > 0.
func failureTable(p []rune) []int {
	failure := make([]int, len(p))

	// i — candidate prefix length, j — current suffix position.
	i, j := 0, 1
	for j < len(p) {
		switch {
		case p[i] == p[j]:
			i++
		case i > 0:
			// Fall back to the next shorter border and re-test
			// the same position j.
			i = failure[i-1]
			continue
		}
		failure[j] = i
		j++
	}

	return failure
}

// Contains reports whether pattern occurs as a contiguous substring of
// text.  A pattern longer than the text yields false, not an error.
//
// Returns ErrEmptyPattern for an empty pattern.
func Contains(text, pattern string) (bool, error) {
	idx, err := Index(text, pattern)
	if err != nil {
		return false, err
	}

	return idx >= 0, nil
}

// Index returns the rune offset of the first occurrence of pattern in
// text, or -1 when pattern does not occur.  A pattern longer than the
// text short-circuits to -1 without scanning.
//
// Returns ErrEmptyPattern for an empty pattern.
func Index(text, pattern string) (int, error) {
	t, p := []rune(text), []rune(pattern)
	if len(p) == 0 {
		return -1, ErrEmptyPattern
	}
	if len(p) > len(t) {
		return -1, nil
	}

	return scan(t, p, failureTable(p)), nil
}

// scan runs the KMP text walk and returns the offset of the first match,
// or -1.  The text cursor i only ever advances; on a fallback the same
// text position is re-tested against the shorter matched prefix.
func scan(text, pattern []rune, failure []int) int {
	i, j := 0, 0
	for i < len(text) {
		if text[i] == pattern[j] {
			if j == len(pattern)-1 {
				return i - j
			}
			j++
		} else if j > 0 {
			j = failure[j-1]
			continue
		}
		i++
	}

	return -1
}
