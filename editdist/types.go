// Package editdist defines operations, cost weights, result tables and
// sentinel errors for minimal-cost string transformation.
package editdist

import (
	"errors"
	"fmt"
)

// Sentinel errors for editdist operations.
var (
	// ErrNegativeCost indicates one of the four cost weights is negative.
	ErrNegativeCost = errors.New("editdist: cost weights must be non-negative")

	// ErrOutOfBounds indicates traversal coordinates exceed the matrix extent.
	ErrOutOfBounds = errors.New("editdist: traversal coordinates exceed matrix extent")

	// ErrScriptMismatch indicates a script operation disagrees with the
	// symbol it would consume when applied.
	ErrScriptMismatch = errors.New("editdist: operation does not match source symbol")
)

// OpKind tags which DP transition produced a cell: diagonal with equal
// symbols (Copy), diagonal with differing symbols (Replace), vertical
// (Delete) or horizontal (Insert).  OpNone marks the origin cell (0,0).
type OpKind int

const (
	// OpNone tags the origin cell; it never appears in an assembled script.
	OpNone OpKind = iota
	// OpCopy keeps the current source symbol unchanged.
	OpCopy
	// OpReplace substitutes the current source symbol with a destination symbol.
	OpReplace
	// OpDelete removes the current source symbol.
	OpDelete
	// OpInsert inserts a destination symbol before the current position.
	OpInsert
)

// String returns the kind name used in op rendering and logs.
func (k OpKind) String() string {
	switch k {
	case OpCopy:
		return "Copy"
	case OpReplace:
		return "Replace"
	case OpDelete:
		return "Delete"
	case OpInsert:
		return "Insert"
	default:
		return "None"
	}
}

// Op is one atomic edit step.  From is the symbol consumed from the source
// (Copy, Replace, Delete); To is the symbol produced in the destination
// (Copy, Replace, Insert).  For Copy, From == To.
type Op struct {
	Kind OpKind
	From rune
	To   rune
}

// String renders an op as Copy(x), Replace(x,y), Delete(x) or Insert(y).
func (op Op) String() string {
	switch op.Kind {
	case OpCopy:
		return fmt.Sprintf("Copy(%c)", op.From)
	case OpReplace:
		return fmt.Sprintf("Replace(%c,%c)", op.From, op.To)
	case OpDelete:
		return fmt.Sprintf("Delete(%c)", op.From)
	case OpInsert:
		return fmt.Sprintf("Insert(%c)", op.To)
	default:
		return "None"
	}
}

// Script is an ordered edit sequence in left-to-right application order:
// the earliest edit comes first.
type Script []Op

// Cost sums the script's weights under c.
func (s Script) Cost(c Costs) int {
	total := 0
	for _, op := range s {
		switch op.Kind {
		case OpCopy:
			total += c.Copy
		case OpReplace:
			total += c.Replace
		case OpDelete:
			total += c.Delete
		case OpInsert:
			total += c.Insert
		}
	}

	return total
}

// Costs holds the four non-negative operation weights.
type Costs struct {
	Copy    int
	Replace int
	Delete  int
	Insert  int
}

// DefaultCosts returns unit weights for all four operations.
func DefaultCosts() Costs {
	return Costs{Copy: 1, Replace: 1, Delete: 1, Insert: 1}
}

// validate rejects negative weights.
func (c Costs) validate() error {
	if c.Copy < 0 || c.Replace < 0 || c.Delete < 0 || c.Insert < 0 {
		return ErrNegativeCost
	}

	return nil
}

// Tables bundles the two tightly-coupled outputs of one DP computation:
// the cost matrix and the aligned operation matrix.  Both have dimensions
// (len(source)+1) × (len(destination)+1); Cost[i][j] is the minimum total
// cost of transforming source[0..i) into destination[0..j), and Ops[i][j]
// tags the transition that produced it.  Tables is immutable once built.
type Tables struct {
	Cost [][]int
	Ops  [][]Op
}

// MemoryMode controls how Distance stores its DP rows.
//
//   - FullMatrix — keep the entire (m+1)×(n+1) cost and operation matrices.
//     Required for script assembly.  Memory: O(m·n).
//
//   - TwoRows — only keep the current and previous cost rows.
//     Memory drops to O(n), but no operation matrix exists, so no script
//     can be assembled.  Use when only the distance is needed.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support script assembly, O(m·n) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep two cost rows, distance only, O(n) memory.
	TwoRows
)

// Options configures Distance.
type Options struct {
	// MemoryMode chooses FullMatrix or TwoRows storage.
	MemoryMode MemoryMode
}

// DefaultOptions returns Options with FullMatrix storage.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}
