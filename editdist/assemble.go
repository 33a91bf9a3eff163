package editdist

// Assemble reconstructs the ordered minimal-cost edit script by walking the
// operation matrix backwards from cell (i,j) to the origin: Copy/Replace
// steps to (i-1,j-1), Delete to (i-1,j), Insert to (i,j-1).  Ops are pushed
// during the walk and reversed once, so the returned script is in
// left-to-right application order.  The walk is iterative — each step
// strictly decreases i+j, so it takes O(i+j) steps and constant stack.
//
// Returns ErrOutOfBounds when (i,j) lies outside the matrix extent.
func Assemble(ops [][]Op, i, j int) (Script, error) {
	if len(ops) == 0 || i < 0 || i >= len(ops) || j < 0 || j >= len(ops[0]) {
		return nil, ErrOutOfBounds
	}

	script := make(Script, 0, i+j)
	for i > 0 || j > 0 {
		op := ops[i][j]
		script = append(script, op)
		switch op.Kind {
		case OpCopy, OpReplace:
			i--
			j--
		case OpDelete:
			i--
		case OpInsert:
			j--
		default:
			// A None tag off the origin means the matrix was not produced
			// by BuildTables; the walk cannot continue.
			return nil, ErrOutOfBounds
		}
	}

	// Reverse in-place: the walk collected ops last-edit-first.
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script, nil
}

// Transformation assembles the full edit script from the terminal cell
// (len(source), len(destination)).
func (t *Tables) Transformation() (Script, error) {
	if len(t.Ops) == 0 {
		return nil, ErrOutOfBounds
	}

	return Assemble(t.Ops, len(t.Ops)-1, len(t.Ops[0])-1)
}
