// Package pretty provides Lipgloss-based styled output for the fixups commands.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultWidth is used when the terminal width cannot be determined.
const defaultWidth = 80

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Messages
	Success lipgloss.Style
	Warning lipgloss.Style
	Hint    lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates Styles, plain when colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Success:     plain,
			Warning:     plain,
			Hint:        plain,
			DiffHeader:  plain,
			DiffHunk:    plain,
			DiffAdd:     plain,
			DiffRemove:  plain,
			DiffContext: plain,
			Dim:         plain,
			Bold:        plain,
		}
	}

	return &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true),

		// Diff lines keep their tabs.
		DiffHeader:  lipgloss.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).TabWidth(lipgloss.NoTabConversion),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).TabWidth(lipgloss.NoTabConversion),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).TabWidth(lipgloss.NoTabConversion),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).TabWidth(lipgloss.NoTabConversion),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the column count of writer's terminal, or 80 when
// writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
