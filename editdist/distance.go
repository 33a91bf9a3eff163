package editdist

// Distance returns the minimal total cost of transforming source into
// destination under the weights in c, without assembling a script.
//
// With opts.MemoryMode == FullMatrix (the default, and the mode used when
// opts is nil) this delegates to BuildTables and reads the terminal cell.
// With TwoRows only the current and previous cost rows are kept, dropping
// memory to O(len(destination)); no operation matrix exists in that mode,
// so callers needing a script must use BuildTables.
func Distance(source, destination string, c Costs, opts *Options) (int, error) {
	mode := FullMatrix
	if opts != nil {
		mode = opts.MemoryMode
	}

	if mode == FullMatrix {
		t, err := BuildTables(source, destination, c)
		if err != nil {
			return 0, err
		}

		return t.Cost[len(t.Cost)-1][len(t.Cost[0])-1], nil
	}

	if err := c.validate(); err != nil {
		return 0, err
	}

	src, dst := []rune(source), []rune(destination)
	m, n := len(src), len(dst)

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = j * c.Insert
	}

	for i := 1; i <= m; i++ {
		curr[0] = i * c.Delete
		for j := 1; j <= n; j++ {
			// Same transition order as BuildTables: diagonal, then
			// vertical, then horizontal, strict improvement only.
			if src[i-1] == dst[j-1] {
				curr[j] = prev[j-1] + c.Copy
			} else {
				curr[j] = prev[j-1] + c.Replace
			}
			if v := prev[j] + c.Delete; v < curr[j] {
				curr[j] = v
			}
			if h := curr[j-1] + c.Insert; h < curr[j] {
				curr[j] = h
			}
		}
		prev, curr = curr, prev
	}

	return prev[n], nil
}
