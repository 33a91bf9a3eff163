// Package lvlstr is a small toolbox of classic string algorithms —
// linear-time substring search and minimal-cost string transformation.
//
// 🚀 What is lvlstr?
//
//	A pure-Go companion library to lvlath, focused on sequences of
//	symbols instead of graphs:
//		• kmp/      — Knuth–Morris–Pratt substring search with an explicit
//		              failure (prefix-suffix) table
//		• editdist/ — weighted edit distance with full operation-sequence
//		              reconstruction (copy / replace / delete / insert)
//
// ✨ Why choose lvlstr?
//
//   - Deterministic – reference tie-breaks, reproducible edit scripts
//   - Pure functions – no shared state, every call is independent
//   - Pure Go – no cgo, no hidden deps
//   - Well-tested – scenario fixtures, property checks, benchmarks
//
// Quick ASCII example:
//
//	"te" ──Copy(t)──Copy(e)──Insert(s)──Insert(t)──▶ "test"
//
// Dive into the package docs of kmp and editdist for algorithm
// outlines, complexity notes and runnable examples.
//
//	go get github.com/katalvlaran/lvlstr
package lvlstr
