package kmp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstr/kmp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFailureTable
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Inspect the prefix-suffix table of a repetitive pattern.
//	  pattern = "aabaabaaa"
//
// Effect:
//
//	Entry j tells the scanner how much of the pattern is still matched
//	after a mismatch at position j+1.
//
// Complexity: O(m) time, O(m) memory
func ExampleFailureTable() {
	table, err := kmp.FailureTable("aabaabaaa")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(table)
	// Output:
	// [0 1 0 1 2 3 4 5 2]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleContains
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Search a noisy text for a pattern with a repeated prefix — the case
//	where the failure-table fallback saves re-reading the text.
//
// Complexity: O(n+m) time, O(m) memory
func ExampleContains() {
	text := "alskfjaldsabc1abc1abc12k23adsfabcabc"
	found, err := kmp.Contains(text, "abc1abc12")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(found)
	// Output:
	// true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleIndex
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Locate the first occurrence instead of a bare yes/no.
//
// Complexity: O(n+m) time, O(m) memory
func ExampleIndex() {
	idx, err := kmp.Index("abcxabcdabxabcdabcdabcy", "abcdabcy")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(idx)
	// Output:
	// 15
}
