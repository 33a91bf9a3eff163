package editdist

// BuildTables — weighted minimal-cost transformation tables
//
// Algorithm Outline:
//  1. Let m = len(source), n = len(destination) in runes.
//     Allocate (m+1)×(n+1) cost and operation matrices.
//  2. Initialize the borders by cumulative cost:
//     Cost[i][0] = i·Delete, tagged Delete(source[i-1])
//     Cost[0][j] = j·Insert, tagged Insert(destination[j-1])
//  3. For each interior cell (i,j) evaluate, in order:
//     diagonal   = Cost[i-1][j-1] + (Copy if symbols equal, else Replace)
//     vertical   = Cost[i-1][j]   + Delete
//     horizontal = Cost[i][j-1]   + Insert
//     A later candidate overwrites only on strict improvement, so ties
//     favor diagonal over vertical over horizontal.  This tie-break is
//     load-bearing: equal-cost inputs must reproduce the same script.
//  4. Cost[m][n] is the minimal total cost; the operation matrix is the
//     backtrace graph, encoded as a flat grid.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Errors:
//   - ErrNegativeCost — if any weight is negative.

// BuildTables computes the cost and operation matrices for transforming
// source into destination under the weights in c.  Empty source or
// destination degenerate to a pure insertion row or deletion column; both
// empty yields the single zero origin cell.
func BuildTables(source, destination string, c Costs) (*Tables, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	src, dst := []rune(source), []rune(destination)
	m, n := len(src), len(dst)

	cost := make([][]int, m+1)
	ops := make([][]Op, m+1)
	for i := range cost {
		cost[i] = make([]int, n+1)
		ops[i] = make([]Op, n+1)
	}

	// Borders: turning a prefix into nothing is pure deletion, and
	// nothing into a prefix is pure insertion.
	for i := 1; i <= m; i++ {
		cost[i][0] = i * c.Delete
		ops[i][0] = Op{Kind: OpDelete, From: src[i-1]}
	}
	for j := 1; j <= n; j++ {
		cost[0][j] = j * c.Insert
		ops[0][j] = Op{Kind: OpInsert, To: dst[j-1]}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			// Diagonal first: copy on equal symbols, replace otherwise.
			if src[i-1] == dst[j-1] {
				cost[i][j] = cost[i-1][j-1] + c.Copy
				ops[i][j] = Op{Kind: OpCopy, From: src[i-1], To: src[i-1]}
			} else {
				cost[i][j] = cost[i-1][j-1] + c.Replace
				ops[i][j] = Op{Kind: OpReplace, From: src[i-1], To: dst[j-1]}
			}

			// Vertical and horizontal overwrite only on strict improvement.
			if v := cost[i-1][j] + c.Delete; v < cost[i][j] {
				cost[i][j] = v
				ops[i][j] = Op{Kind: OpDelete, From: src[i-1]}
			}
			if h := cost[i][j-1] + c.Insert; h < cost[i][j] {
				cost[i][j] = h
				ops[i][j] = Op{Kind: OpInsert, To: dst[j-1]}
			}
		}
	}

	return &Tables{Cost: cost, Ops: ops}, nil
}
