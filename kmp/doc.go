// Package kmp provides linear-time substring search via the
// Knuth–Morris–Pratt algorithm, with the failure (prefix-suffix) table
// exposed as a first-class artifact.
//
// 🚀 What is KMP?
//
//	KMP finds a pattern inside a text in O(n+m) by precomputing, for every
//	pattern position, the length of the longest proper prefix that is also
//	a suffix.  On a mismatch the scan falls back inside the pattern instead
//	of re-reading the text.  It’s the workhorse behind:
//	  • Substring search in editors & log scanners
//	  • Network packet / signature matching
//	  • DNA / protein sequence screening
//
// ✨ Key features:
//   - FailureTable — the prefix-suffix table on its own, for callers that
//     search one pattern against many texts
//   - Contains — boolean first-occurrence search
//   - Index — rune offset of the first occurrence (or -1)
//   - Strings are treated as rune sequences; each rune is one atomic symbol
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstr/kmp"
//
//	found, err := kmp.Contains("alskfjaldsabc1abc1abc12k23adsf", "abc1abc12")
//	if err != nil {
//	  // handle ErrEmptyPattern
//	}
//
// Performance:
//
//   - Time:   O(n+m) — each text rune is consumed at most once
//   - Memory: O(m)   — the failure table
//
// See examples in example_test.go.
package kmp
