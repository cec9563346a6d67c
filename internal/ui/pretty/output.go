package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/fixups/pkg/diff"
)

// Printer writes styled command output.
type Printer struct {
	w      io.Writer
	styles *Styles
	width  int
	color  bool
}

// NewPrinter creates a Printer for w. colorMode is "auto", "always" or "never".
func NewPrinter(w io.Writer, colorMode string) *Printer {
	color := IsColorEnabled(colorMode, w)
	return &Printer{
		w:      w,
		styles: NewStyles(color),
		width:  TerminalWidth(w),
		color:  color,
	}
}

// Success prints a completion message on its own line.
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.w, p.styles.Success.Render(message))
}

// Warning prints a warning line.
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.w, p.styles.Warning.Render(message))
}

// Hint prints an unlabeled-fence hint with a one-line preview of its body.
func (p *Printer) Hint(path string, line int, suggestion, preview string) {
	location := p.styles.Dim.Render(fmt.Sprintf("%s:%d", path, line))
	message := p.styles.Hint.Render("unlabeled fence, suggested ```" + suggestion)
	header := location + " " + message

	fmt.Fprintln(p.w, header)
	if preview != "" {
		fmt.Fprintln(p.w, "    "+p.styles.Dim.Render(Truncate(preview, p.width-4)))
	}
}

// Diff prints a unified diff, colored line by line. Without color the diff is
// written byte for byte so it can be fed to patch.
func (p *Printer) Diff(d *diff.Diff) {
	if !d.HasChanges() {
		return
	}

	if !p.color {
		_, _ = io.WriteString(p.w, d.String())
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n") {
		fmt.Fprintln(p.w, p.styleDiffLine(line))
	}
}

func (p *Printer) styleDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "--- "), strings.HasPrefix(line, "+++ "):
		return p.styles.DiffHeader.Render(line)
	case strings.HasPrefix(line, "@@"):
		return p.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return p.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return p.styles.DiffRemove.Render(line)
	default:
		return p.styles.DiffContext.Render(line)
	}
}

// Truncate shortens s to at most width runes, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
