package editdist_test

import (
	"testing"

	"github.com/katalvlaran/lvlstr/editdist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildTables_NegativeCost verifies that any negative weight is
// rejected with ErrNegativeCost.
func TestBuildTables_NegativeCost(t *testing.T) {
	c := editdist.DefaultCosts()
	c.Replace = -1

	_, err := editdist.BuildTables("a", "b", c)
	assert.ErrorIs(t, err, editdist.ErrNegativeCost, "negative weight must error")
}

// TestBuildTables_EmptySource verifies the pure-insertion row.
func TestBuildTables_EmptySource(t *testing.T) {
	tables, err := editdist.BuildTables("", "test", editdist.DefaultCosts())
	require.NoError(t, err)

	require.Len(t, tables.Cost, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tables.Cost[0], "insertion row")
	for j, want := range "test" {
		op := tables.Ops[0][j+1]
		assert.Equal(t, editdist.OpInsert, op.Kind, "cell (0,%d)", j+1)
		assert.Equal(t, want, op.To, "cell (0,%d)", j+1)
	}
}

// TestBuildTables_EmptyDestination verifies the pure-deletion column.
func TestBuildTables_EmptyDestination(t *testing.T) {
	tables, err := editdist.BuildTables("test", "", editdist.DefaultCosts())
	require.NoError(t, err)

	require.Len(t, tables.Cost, 5)
	for i, want := range "test" {
		require.Len(t, tables.Cost[i+1], 1)
		assert.Equal(t, i+1, tables.Cost[i+1][0], "row %d", i+1)
		op := tables.Ops[i+1][0]
		assert.Equal(t, editdist.OpDelete, op.Kind, "cell (%d,0)", i+1)
		assert.Equal(t, want, op.From, "cell (%d,0)", i+1)
	}
}

// TestBuildTables_BothEmpty verifies the degenerate single origin cell.
func TestBuildTables_BothEmpty(t *testing.T) {
	tables, err := editdist.BuildTables("", "", editdist.DefaultCosts())
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0}}, tables.Cost)
	assert.Equal(t, editdist.OpNone, tables.Ops[0][0].Kind, "origin tag")

	script, err := tables.Transformation()
	require.NoError(t, err)
	assert.Empty(t, script, "no operations for two empty strings")
}

// TestBuildTables_ReferenceCosts checks cost matrices against reference
// fixtures with unit weights.
func TestBuildTables_ReferenceCosts(t *testing.T) {
	cases := []struct {
		source, destination string
		want                [][]int
	}{
		{"t", "test", [][]int{{0, 1, 2, 3, 4}, {1, 1, 2, 3, 4}}},
		{"te", "test", [][]int{{0, 1, 2, 3, 4}, {1, 1, 2, 3, 4}, {2, 2, 2, 3, 4}}},
		{"pl", "tst", [][]int{{0, 1, 2, 3}, {1, 1, 2, 3}, {2, 2, 2, 3}}},
	}
	for _, tc := range cases {
		tables, err := editdist.BuildTables(tc.source, tc.destination, editdist.DefaultCosts())
		require.NoError(t, err, "%q -> %q", tc.source, tc.destination)
		assert.Equal(t, tc.want, tables.Cost, "cost matrix %q -> %q", tc.source, tc.destination)
	}
}

// TestBuildTables_ReferenceOps checks the operation tags of the "te" ->
// "test" fixture cell by cell: the tie-break (diagonal, vertical,
// horizontal, strict improvement only) must reproduce these exact tags.
func TestBuildTables_ReferenceOps(t *testing.T) {
	tables, err := editdist.BuildTables("te", "test", editdist.DefaultCosts())
	require.NoError(t, err)

	copyOp := func(r rune) editdist.Op { return editdist.Op{Kind: editdist.OpCopy, From: r, To: r} }
	repl := func(f, to rune) editdist.Op { return editdist.Op{Kind: editdist.OpReplace, From: f, To: to} }
	del := func(r rune) editdist.Op { return editdist.Op{Kind: editdist.OpDelete, From: r} }
	ins := func(r rune) editdist.Op { return editdist.Op{Kind: editdist.OpInsert, To: r} }

	want := [][]editdist.Op{
		{{}, ins('t'), ins('e'), ins('s'), ins('t')},
		{del('t'), copyOp('t'), repl('t', 'e'), repl('t', 's'), copyOp('t')},
		{del('e'), repl('e', 't'), copyOp('e'), repl('e', 's'), repl('e', 't')},
	}
	assert.Equal(t, want, tables.Ops, "operation matrix")
}

// TestBuildTables_UnitCostBounds verifies |i-j| <= cost[i][j] <= max(i,j)
// for every cell under unit weights.
func TestBuildTables_UnitCostBounds(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"sunday", "saturday"},
		{"abc", "abc"},
		{"", "abcd"},
		{"abcd", ""},
	}
	for _, pair := range pairs {
		tables, err := editdist.BuildTables(pair[0], pair[1], editdist.DefaultCosts())
		require.NoError(t, err)
		for i, row := range tables.Cost {
			for j, cell := range row {
				lo, hi := i-j, j
				if lo < 0 {
					lo = -lo
				}
				if i > j {
					hi = i
				}
				assert.GreaterOrEqual(t, cell, lo, "%q -> %q cell (%d,%d)", pair[0], pair[1], i, j)
				assert.LessOrEqual(t, cell, hi, "%q -> %q cell (%d,%d)", pair[0], pair[1], i, j)
			}
		}
	}
}

// TestBuildTables_WeightedAsymmetry verifies that unequal weights steer the
// chosen transitions: with expensive replaces the final cost prefers a
// delete+insert pair.
func TestBuildTables_WeightedAsymmetry(t *testing.T) {
	c := editdist.Costs{Copy: 0, Replace: 5, Delete: 1, Insert: 1}
	tables, err := editdist.BuildTables("a", "b", c)
	require.NoError(t, err)

	assert.Equal(t, 2, tables.Cost[1][1], "delete+insert beats a cost-5 replace")
}
