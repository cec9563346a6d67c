// Package langdetect suggests a fence language for the body of an unlabeled code block.
// Domain patterns seen in the project's reports (Prisma field listings, HTTP request
// examples) are checked first; go-enry handles everything else.
package langdetect

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags returned by Detect.
const (
	LangPrisma     = "prisma"
	LangHTTP       = "http"
	LangJSON       = "json"
	LangYAML       = "yaml"
	LangSQL        = "sql"
	LangBash       = "bash"
	LangTypeScript = "typescript"
	LangText       = "text"
)

//nolint:gochecknoglobals // Compiled once.
var (
	httpRequestLine = regexp.MustCompile(`^(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS) \S+`)
	prismaField     = regexp.MustCompile(`^-?\s*[a-z][A-Za-z0-9_]*:?\s+(String|Int|Float|Boolean|DateTime|Decimal|Json|Bytes|BigInt)\b`)
	prismaModel     = regexp.MustCompile(`(?m)^(model|enum)\s+[A-Z]\w*\s*\{`)
)

// classifierCandidates limits go-enry's classifier to languages that show up in the project.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"TypeScript", "JavaScript", "Shell", "JSON", "YAML", "SQL", "Python", "Go", "Markdown",
}

// Detect returns a fence tag for content, or "text" when nothing is confident.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return LangText
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// The classifier always ranks some candidate first, so prose is kept out of it.
	// Its safe flag is only set for a single candidate and is not consulted.
	if looksLikeCode(trimmed) {
		if lang, _ := enry.GetLanguageByClassifier(content, classifierCandidates); isCandidate(lang) {
			return normalize(lang)
		}
	}

	return LangText
}

// looksLikeCode reports whether content has the punctuation of source code.
func looksLikeCode(trimmed []byte) bool {
	return bytes.ContainsAny(trimmed, "{}();=")
}

func isCandidate(lang string) bool {
	return lang != "" && slices.Contains(classifierCandidates, lang)
}

// detectByPattern checks the patterns that are reliable enough to skip the classifier.
func detectByPattern(trimmed []byte) string {
	first, _, _ := strings.Cut(string(trimmed), "\n")
	first = strings.TrimSpace(first)

	switch {
	case httpRequestLine.MatchString(first):
		return LangHTTP
	case strings.HasPrefix(first, "- id:"), strings.HasPrefix(first, "- userId:"),
		prismaField.MatchString(first), prismaModel.Match(trimmed):
		return LangPrisma
	case isJSON(trimmed):
		return LangJSON
	case isSQL(first):
		return LangSQL
	case isYAML(trimmed):
		return LangYAML
	default:
		return ""
	}
}

func isJSON(trimmed []byte) bool {
	return (trimmed[0] == '{' || trimmed[0] == '[') && bytes.Contains(trimmed, []byte(`"`))
}

func isSQL(first string) bool {
	upper := strings.ToUpper(first)
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "CREATE ", "ALTER "} {
		if strings.HasPrefix(upper, keyword) {
			return true
		}
	}
	return false
}

// isYAML counts "key: value" and "- item" lines; two or more is enough.
func isYAML(trimmed []byte) bool {
	count := 0
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.ContainsAny(line, "(){};") {
			return false
		}
		if bytes.Contains(line, []byte(": ")) || bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return LangBash
	case "TypeScript":
		return LangTypeScript
	default:
		return strings.ToLower(lang)
	}
}
