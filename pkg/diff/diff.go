// Package diff renders unified diffs between the original and rewritten content of a file.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Kind classifies a diff line.
type Kind int

const (
	Context Kind = iota
	Add
	Remove
)

// Line is one line of a hunk.
type Line struct {
	Kind    Kind
	Content string
}

// Hunk is a contiguous group of changes with surrounding context.
// Start positions are 1-based.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// Diff is a unified diff of a single file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Compute returns the diff between before and after, or nil if they are equal.
func Compute(path string, before, after []byte) *Diff {
	oldLines := split(before)
	newLines := split(after)

	ops := operations(oldLines, newLines)
	hunks := group(ops)
	if len(hunks) == 0 {
		return nil
	}

	result := &Diff{Path: path, Hunks: hunks}
	for _, op := range ops {
		switch op.Kind {
		case Add:
			result.Additions++
		case Remove:
			result.Deletions++
		}
	}

	return result
}

// HasChanges reports whether d contains at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders d in unified format with a/ and b/ path prefixes.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n+++ b/%s\n", path, path)

	for _, hunk := range d.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')
		for _, line := range hunk.Lines {
			builder.WriteString(line.Prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// Header returns the "@@ -a,b +c,d @@" line for the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
}

// Prefix returns the unified diff marker for the line.
func (l Line) Prefix() string {
	switch l.Kind {
	case Add:
		return "+"
	case Remove:
		return "-"
	default:
		return " "
	}
}

// split breaks content into lines, dropping the empty element after a trailing newline.
func split(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// operations walks an LCS table to produce the edit script from oldLines to newLines.
// Removals are emitted before additions within a changed region.
// The full table takes O(len(oldLines)*len(newLines)) memory.
func operations(oldLines, newLines []string) []Line {
	rows, cols := len(oldLines), len(newLines)

	// lcs[i][j] is the LCS length of oldLines[i:] and newLines[j:].
	lcs := make([][]int, rows+1)
	for i := range lcs {
		lcs[i] = make([]int, cols+1)
	}
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]Line, 0, max(rows, cols))
	var adds []Line
	flush := func() {
		ops = append(ops, adds...)
		adds = adds[:0]
	}

	i, j := 0, 0
	for i < rows || j < cols {
		switch {
		case i < rows && j < cols && oldLines[i] == newLines[j]:
			flush()
			ops = append(ops, Line{Kind: Context, Content: oldLines[i]})
			i++
			j++
		case j < cols && (i == rows || lcs[i][j+1] > lcs[i+1][j]):
			adds = append(adds, Line{Kind: Add, Content: newLines[j]})
			j++
		default:
			ops = append(ops, Line{Kind: Remove, Content: oldLines[i]})
			i++
		}
	}
	flush()

	return ops
}

// group splits ops into hunks, merging changes separated by at most
// 2*contextLines unchanged lines.
func group(ops []Line) []Hunk {
	var hunks []Hunk

	idx := 0
	for idx < len(ops) {
		for idx < len(ops) && ops[idx].Kind == Context {
			idx++
		}
		if idx == len(ops) {
			break
		}

		start := max(idx-contextLines, 0)

		// Extend end while the next change is close enough to merge.
		end := idx
		for end < len(ops) {
			if ops[end].Kind != Context {
				end++
				continue
			}
			run := end
			for run < len(ops) && ops[run].Kind == Context {
				run++
			}
			if run == len(ops) || run-end > 2*contextLines {
				break
			}
			end = run
		}

		stop := min(end+contextLines, len(ops))
		hunks = append(hunks, newHunk(ops, start, stop))
		idx = stop
	}

	return hunks
}

func newHunk(ops []Line, start, stop int) Hunk {
	hunk := Hunk{OldStart: 1, NewStart: 1}
	for _, op := range ops[:start] {
		if op.Kind != Add {
			hunk.OldStart++
		}
		if op.Kind != Remove {
			hunk.NewStart++
		}
	}

	hunk.Lines = append(hunk.Lines, ops[start:stop]...)
	for _, op := range hunk.Lines {
		if op.Kind != Add {
			hunk.OldCount++
		}
		if op.Kind != Remove {
			hunk.NewCount++
		}
	}

	return hunk
}
