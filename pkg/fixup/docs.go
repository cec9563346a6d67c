package fixup

import (
	"regexp"
)

// Paths of the support documents rewritten by FixKnowledgeBase and FixSupportGuide.
const (
	KnowledgeBasePath = "AI_KNOWLEDGE_BASE.md"
	SupportGuidePath  = "SUPPORT_STAFF_TRAINING.md"
)

// Success messages for the support documents.
const (
	KnowledgeBaseSuccessMessage = "✅ Fixed AI_KNOWLEDGE_BASE.md"
	SupportGuideSuccessMessage  = "✅ Fixed SUPPORT_STAFF_TRAINING.md"
)

const closingText = "**Welcome to the team!** You're now equipped to provide world-class support " +
	"to Advancia users. Let's make every interaction count! 🚀"

// KnowledgeBaseReplacements turns the trailing italic note into a bold note after a rule.
func KnowledgeBaseReplacements() []Replacement {
	return []Replacement{
		{
			Name:  "trailing-note",
			Old:   "_This knowledge base is continuously updated. Last update: October 28, 2025_",
			New:   "---\n\n**Note:** This knowledge base is continuously updated. Last update: October 28, 2025",
			Limit: 1,
		},
	}
}

// FixKnowledgeBase applies KnowledgeBaseReplacements to content.
func FixKnowledgeBase(content []byte) Result {
	return ApplyReplacements(content, KnowledgeBaseReplacements())
}

// labeledURLLabels prefix bare http URLs in the support guide's quick links.
//
//nolint:gochecknoglobals // Read-only lookup table.
var labeledURLLabels = []struct {
	name   string
	prefix string
}{
	{"admin-dashboard-url", `- \*\*Admin Dashboard\*\* - `},
	{"backend-api-url", `- \*\*Backend API\*\*: `},
	{"frontend-url", `- \*\*Frontend\*\*: `},
	{"ai-analytics-url", `- \*\*AI Analytics\*\*: `},
	{"admin-chat-url", `- \*\*Admin Chat Monitor\*\*: `},
}

// SupportGuidePatterns returns the ordered pattern replacements for the support guide.
func SupportGuidePatterns() []PatternReplacement {
	patterns := []PatternReplacement{
		{
			Name:     "heading-punctuation",
			Pattern:  regexp.MustCompile(`## Welcome to the Advancia Support Team!`),
			Template: "## Welcome to the Advancia Support Team",
			Limit:    1,
		},
	}

	for _, label := range labeledURLLabels {
		patterns = append(patterns, PatternReplacement{
			Name:     label.name,
			Pattern:  regexp.MustCompile(`(` + label.prefix + `)(http://[^\s]+)`),
			Template: "${1}<${2}>",
		})
	}

	return append(patterns,
		PatternReplacement{
			Name:     "bare-email",
			Pattern:  regexp.MustCompile(`<?((?:tech|security|compliance|support|billing)@advanciapayledger\.com)>?`),
			Template: "<${1}>",
		},
		// The bold run may span lines but never a blank line or an inner "**",
		// so the already fixed closing text cannot match.
		PatternReplacement{
			Name:     "closing-emphasis",
			Pattern:  regexp.MustCompile(`\*\*Welcome to the team(?:[^*\n]|\*[^*\n]|\n[^\n*])*?🚀\*\*`),
			Template: "---\n\n" + closingText,
			Limit:    1,
		},
	)
}

// FixSupportGuide applies SupportGuidePatterns to content.
func FixSupportGuide(content []byte) Result {
	return ApplyPatterns(content, SupportGuidePatterns())
}
