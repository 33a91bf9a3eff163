// Package editdist computes the minimal-cost transformation between two
// strings under weighted copy / replace / delete / insert operations,
// with full reconstruction of the edit sequence.
//
// 🚀 What is weighted edit distance?
//
//	A dynamic program over every prefix pair of a source and a destination
//	string.  Each cell holds the cheapest way to turn one prefix into the
//	other; walking the cell tags backwards from the final cell yields the
//	actual edit script.  It’s widely used in:
//	  • Spell-checking & did-you-mean suggestions
//	  • Diffing & patch generation
//	  • DNA sequence alignment
//	  • Fuzzy record matching
//
// ✨ Key features:
//   - four independent weights (copy is a first-class, chargeable op)
//   - cost matrix + operation matrix bundled as one Tables value
//   - deterministic tie-break: diagonal, then vertical, then horizontal,
//     later candidates winning only on strict improvement
//   - iterative backtrace — no recursion depth limits on large inputs
//   - Apply / WriteLog to replay a script and render a per-step log
//   - TwoRows memory mode for distance-only callers (choose via MemoryMode)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstr/editdist"
//
//	tables, err := editdist.BuildTables("te", "test", editdist.DefaultCosts())
//	if err != nil {
//	  // handle ErrNegativeCost
//	}
//	script, err := tables.Transformation()
//	if err != nil {
//	  // handle ErrOutOfBounds
//	}
//	result, err := editdist.Apply("te", script) // "test"
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (FullMatrix) or O(n) (TwoRows, distance only)
//
// See examples in example_test.go.
package editdist
