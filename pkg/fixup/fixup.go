// Package fixup holds the text transforms applied by the fixups commands.
// Every transform is a pure function over file content; file I/O lives in the runner package.
package fixup

import (
	"strings"
)

// Change records a single substitution made by a transform.
type Change struct {
	// Rule is the name of the rule that produced the change.
	Rule string

	// Line is the 1-based line number for line rules.
	// Zero for whole-content replacements.
	Line int

	// Count is the number of occurrences replaced by a whole-content replacement.
	Count int

	// Before and After hold the replaced text, without line terminators.
	Before string
	After  string
}

// Result is the outcome of running a transform over some content.
type Result struct {
	// Content is the transformed content.
	Content []byte

	// Changes lists every substitution in application order.
	Changes []Change
}

// Changed reports whether the transform modified anything.
func (r Result) Changed() bool {
	return len(r.Changes) > 0
}

// Transform converts file content into a Result.
type Transform func(content []byte) Result

// LineContext is what a LineRule sees when deciding whether to fire.
type LineContext struct {
	// Line is the current line without its terminator.
	Line string

	// Next is the following line without its terminator. Empty when HasNext is false.
	Next string

	// HasNext is false on the last line of the file.
	HasNext bool
}

// LineRule rewrites a single line. Match returns the replacement text and true
// when the rule applies.
type LineRule struct {
	Name  string
	Match func(lc LineContext) (string, bool)
}

// ApplyLineRules runs rules over content line by line. For each line the first
// matching rule wins; unmatched lines are copied verbatim. A replaced line keeps
// the terminator of the line it replaces.
func ApplyLineRules(content []byte, rules []LineRule) Result {
	lines := splitLines(string(content))

	var out strings.Builder
	out.Grow(len(content))

	var changes []Change

	for idx, line := range lines {
		lc := LineContext{Line: line.text}
		if idx+1 < len(lines) {
			lc.Next = lines[idx+1].text
			lc.HasNext = true
		}

		text := line.text
		for _, rule := range rules {
			replacement, ok := rule.Match(lc)
			if !ok {
				continue
			}
			if replacement != line.text {
				changes = append(changes, Change{
					Rule:   rule.Name,
					Line:   idx + 1,
					Before: line.text,
					After:  replacement,
				})
				text = replacement
			}
			break
		}

		out.WriteString(text)
		out.WriteString(line.eol)
	}

	return Result{Content: []byte(out.String()), Changes: changes}
}

// line is a single line split from content with its terminator kept apart.
type line struct {
	text string
	eol  string
}

// splitLines splits s into lines, keeping each terminator ("\n", "\r\n" or "")
// so that joining text+eol reproduces s exactly.
func splitLines(s string) []line {
	if s == "" {
		return nil
	}

	var lines []line
	for s != "" {
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			lines = append(lines, line{text: s})
			break
		}

		text, eol := s[:idx], "\n"
		if strings.HasSuffix(text, "\r") {
			text, eol = text[:len(text)-1], "\r\n"
		}
		lines = append(lines, line{text: text, eol: eol})
		s = s[idx+1:]
	}

	return lines
}
