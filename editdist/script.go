package editdist

import (
	"fmt"
	"io"
)

// Apply replays script against source left to right and returns the
// resulting string.  A cursor tracks the current position: Copy and
// Replace consume one source symbol, Delete removes the symbol at the
// cursor, Insert places a symbol before it.  Every consumed symbol is
// checked against the op's From field.
//
// Returns ErrScriptMismatch when an op disagrees with the buffer — the
// script was assembled for a different source.
func Apply(source string, script Script) (string, error) {
	buf := []rune(source)
	pos := 0

	for _, op := range script {
		switch op.Kind {
		case OpCopy, OpReplace:
			if pos >= len(buf) || buf[pos] != op.From {
				return "", ErrScriptMismatch
			}
			if op.Kind == OpReplace {
				buf[pos] = op.To
			}
			pos++
		case OpDelete:
			if pos >= len(buf) || buf[pos] != op.From {
				return "", ErrScriptMismatch
			}
			buf = append(buf[:pos], buf[pos+1:]...)
		case OpInsert:
			buf = append(buf[:pos], append([]rune{op.To}, buf[pos:]...)...)
			pos++
		default:
			return "", ErrScriptMismatch
		}
	}

	return string(buf), nil
}

// WriteLog replays script against source exactly like Apply while
// appending one human-readable line per step to w: the op description in
// a fixed-width column, then the intermediate string.  The final string
// is returned so callers need not replay twice.
//
//	Copy t              test
//	Insert s            tesst
//
// w is treated as a sequential append-only sink; write errors are
// returned as-is.
func WriteLog(w io.Writer, source string, script Script) (string, error) {
	buf := []rune(source)
	pos := 0

	for _, op := range script {
		var desc string
		switch op.Kind {
		case OpCopy:
			if pos >= len(buf) || buf[pos] != op.From {
				return "", ErrScriptMismatch
			}
			desc = fmt.Sprintf("Copy %c", op.From)
			pos++
		case OpReplace:
			if pos >= len(buf) || buf[pos] != op.From {
				return "", ErrScriptMismatch
			}
			buf[pos] = op.To
			desc = fmt.Sprintf("Replace %c with %c", op.From, op.To)
			pos++
		case OpDelete:
			if pos >= len(buf) || buf[pos] != op.From {
				return "", ErrScriptMismatch
			}
			buf = append(buf[:pos], buf[pos+1:]...)
			desc = fmt.Sprintf("Delete %c", op.From)
		case OpInsert:
			buf = append(buf[:pos], append([]rune{op.To}, buf[pos:]...)...)
			desc = fmt.Sprintf("Insert %c", op.To)
			pos++
		default:
			return "", ErrScriptMismatch
		}

		if _, err := fmt.Fprintf(w, "%-20s%s\n", desc, string(buf)); err != nil {
			return "", err
		}
	}

	return string(buf), nil
}
