package versioning

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each hunk.
const diffContext = 3

// UnifiedDiff produces a unified line diff between two texts. Identical or
// both-empty inputs yield an empty diff.
func UnifiedDiff(oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lineIndex := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lineIndex)

	var ops []lineOp
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		default:
			op = ' '
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{op: op, text: line})
		}
	}

	return buildUnified(ops)
}

type lineOp struct {
	op   byte
	text string
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// buildUnified groups changed lines into hunks with diffContext lines of
// surrounding context and renders the standard @@ headers.
func buildUnified(ops []lineOp) string {
	var changed []int
	for i, op := range ops {
		if op.op != ' ' {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return ""
	}

	// Line numbers of each op in the old and new text, 1-based.
	oldAt := make([]int, len(ops))
	newAt := make([]int, len(ops))
	oldLn, newLn := 1, 1
	for i, op := range ops {
		oldAt[i] = oldLn
		newAt[i] = newLn
		if op.op != '+' {
			oldLn++
		}
		if op.op != '-' {
			newLn++
		}
	}

	var sb strings.Builder
	sb.WriteString("--- before\n+++ after\n")

	for i := 0; i < len(changed); {
		j := i
		for j+1 < len(changed) && changed[j+1]-changed[j] <= 2*diffContext {
			j++
		}

		start := changed[i] - diffContext
		if start < 0 {
			start = 0
		}
		end := changed[j] + diffContext
		if end > len(ops)-1 {
			end = len(ops) - 1
		}

		oldCount, newCount := 0, 0
		for k := start; k <= end; k++ {
			if ops[k].op != '+' {
				oldCount++
			}
			if ops[k].op != '-' {
				newCount++
			}
		}

		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", oldAt[start], oldCount, newAt[start], newCount)
		for k := start; k <= end; k++ {
			sb.WriteByte(ops[k].op)
			sb.WriteString(ops[k].text)
			sb.WriteByte('\n')
		}

		i = j + 1
	}

	return sb.String()
}
