package fixup

// QuotesPath is the JSX page rewritten by UnescapeQuotes.
const QuotesPath = "frontend/src/app/medbeds/book/page.tsx"

// QuotesSuccessMessage is printed after the page has been fixed.
const QuotesSuccessMessage = "✅ Fixed escaped quotes in medbeds/book/page.tsx"

// QuoteReplacements returns the literal replacements that drop backslashes
// from the appointment date and time input attributes.
func QuoteReplacements() []Replacement {
	return []Replacement{
		{
			Name: "date-input-quotes",
			Old:  `className=\"border rounded px-3 py-2\" type=\"date\" title=\"Preferred appointment date\"`,
			New:  `className="border rounded px-3 py-2" type="date" title="Preferred appointment date"`,
		},
		{
			Name: "time-input-quotes",
			Old:  `className=\"border rounded px-3 py-2\" type=\"time\" title=\"Preferred appointment time\"`,
			New:  `className="border rounded px-3 py-2" type="time" title="Preferred appointment time"`,
		},
	}
}

// UnescapeQuotes applies QuoteReplacements to content.
// Content containing neither escaped run is returned unchanged.
func UnescapeQuotes(content []byte) Result {
	return ApplyReplacements(content, QuoteReplacements())
}
