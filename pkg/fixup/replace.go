package fixup

import (
	"regexp"
	"strings"
)

// Replacement substitutes a literal string across the whole content.
// Limit caps the number of occurrences replaced; zero or negative means all.
type Replacement struct {
	Name  string
	Old   string
	New   string
	Limit int
}

// PatternReplacement substitutes regexp matches across the whole content.
// Template uses regexp.Expand syntax ($1, ${name}).
// Limit caps the number of matches considered, counted from the start of the
// content whether or not their expansion changes the text; zero or negative means all.
type PatternReplacement struct {
	Name     string
	Pattern  *regexp.Regexp
	Template string
	Limit    int
}

// ApplyReplacements applies each literal replacement in order to content.
// Replacements that find nothing are silently skipped.
func ApplyReplacements(content []byte, replacements []Replacement) Result {
	text := string(content)
	var changes []Change

	for _, repl := range replacements {
		if repl.Old == "" {
			continue
		}

		found := strings.Count(text, repl.Old)
		if found == 0 {
			continue
		}

		limit := -1
		if repl.Limit > 0 {
			limit = repl.Limit
			found = min(found, repl.Limit)
		}

		text = strings.Replace(text, repl.Old, repl.New, limit)
		changes = append(changes, Change{
			Rule:   repl.Name,
			Count:  found,
			Before: repl.Old,
			After:  repl.New,
		})
	}

	return Result{Content: []byte(text), Changes: changes}
}

// ApplyPatterns applies each pattern replacement in order to content.
// A match whose expansion equals the matched text is not counted as a change.
func ApplyPatterns(content []byte, patterns []PatternReplacement) Result {
	text := string(content)
	var changes []Change

	for _, pat := range patterns {
		var (
			out      strings.Builder
			last     int
			replaced int
			before   string
			after    string
		)

		limit := -1
		if pat.Limit > 0 {
			limit = pat.Limit
		}

		for _, loc := range pat.Pattern.FindAllStringSubmatchIndex(text, limit) {

			match := text[loc[0]:loc[1]]
			expanded := string(pat.Pattern.ExpandString(nil, pat.Template, text, loc))

			out.WriteString(text[last:loc[0]])
			out.WriteString(expanded)
			last = loc[1]

			if expanded != match {
				if replaced == 0 {
					before, after = match, expanded
				}
				replaced++
			}
		}

		if replaced == 0 {
			continue
		}

		out.WriteString(text[last:])
		text = out.String()
		changes = append(changes, Change{
			Rule:   pat.Name,
			Count:  replaced,
			Before: before,
			After:  after,
		})
	}

	return Result{Content: []byte(text), Changes: changes}
}
