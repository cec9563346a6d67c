package fixup

import (
	"strings"
)

// ReportPath is the report document rewritten by FixReport.
const ReportPath = "MEDBED_CRYPTO_RECOVERY_VALIDATION_REPORT.md"

// ReportSuccessMessage is printed after the report has been fixed.
const ReportSuccessMessage = "✅ Applied comprehensive markdown fixes"

const fenceMarker = "```"

// Fence language tags assigned by the fence rule.
const (
	LangPrisma = "prisma"
	LangText   = "text"
)

// emphasisHeadings are bold paragraphs that stand in for level-4 headings.
//
//nolint:gochecknoglobals // Read-only lookup table.
var emphasisHeadings = []string{
	"1. Seed Phrase Recovery",
	"2. Multi-Signature (M-of-N)",
	"3. Social Recovery (Guardians)",
}

// prismaPrefixes mark the first line of a Prisma field listing.
//
//nolint:gochecknoglobals // Read-only lookup table.
var prismaPrefixes = []string{"- id:", "- userId:"}

// httpPrefixes mark the first line of an HTTP request example.
//
//nolint:gochecknoglobals // Read-only lookup table.
var httpPrefixes = []string{"POST", "GET", "PUT", "DELETE"}

// ReportRules returns the ordered line rules for the recovery validation report.
func ReportRules() []LineRule {
	return []LineRule{
		{Name: "emphasis-heading", Match: matchEmphasisHeading},
		bareURLRule("frontend-url", "Frontend", "https://advanciapayledger.com"),
		bareURLRule("backend-url", "Backend", "https://api.advanciapayledger.com"),
		{Name: "fence-language", Match: matchFenceLanguage},
	}
}

// FixReport applies ReportRules to content.
func FixReport(content []byte) Result {
	return ApplyLineRules(content, ReportRules())
}

func matchEmphasisHeading(lc LineContext) (string, bool) {
	trimmed := strings.TrimSpace(lc.Line)
	for _, heading := range emphasisHeadings {
		if trimmed == "**"+heading+"**" {
			return "#### " + heading, true
		}
	}
	return "", false
}

// bareURLRule replaces a "- <label>: <url>/" list item with a Markdown link.
// The whole line is replaced, matching on substring.
func bareURLRule(name, label, url string) LineRule {
	bare := "- " + label + ": " + url + "/"
	linked := "- " + label + ": [" + url + "](" + url + ")"

	return LineRule{
		Name: name,
		Match: func(lc LineContext) (string, bool) {
			if !strings.Contains(lc.Line, bare) {
				return "", false
			}
			return linked, true
		},
	}
}

// matchFenceLanguage tags a bare opening fence based on the line that follows it.
func matchFenceLanguage(lc LineContext) (string, bool) {
	if strings.TrimSpace(lc.Line) != fenceMarker || !lc.HasNext {
		return "", false
	}

	next := strings.TrimSpace(lc.Next)
	switch {
	case hasAnyPrefix(next, prismaPrefixes):
		return fenceMarker + LangPrisma, true
	case hasAnyPrefix(next, httpPrefixes):
		return fenceMarker + LangText, true
	default:
		return "", false
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
