package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/fixups/internal/ui/pretty"
	"github.com/yaklabco/fixups/pkg/diff"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "test", styles.Success.Render("test"), "No-color Success should not add formatting")
	assert.Equal(t, "test", styles.DiffAdd.Render("test"), "No-color DiffAdd should not add formatting")
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

func TestTerminalWidth_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 80, pretty.TerminalWidth(&buf))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", pretty.Truncate("short", 10))
	assert.Equal(t, "abcd…", pretty.Truncate("abcdefgh", 5))
	assert.Equal(t, "日本…", pretty.Truncate("日本語テキスト", 3))
	assert.Equal(t, "keep", pretty.Truncate("keep", 0))
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := pretty.NewPrinter(&buf, "never")

	printer.Success("✅ Applied comprehensive markdown fixes")
	printer.Hint("REPORT.md", 12, "http", "GET /api/health")
	printer.Diff(diff.Compute("REPORT.md", []byte("a\n"), []byte("b\n")))

	want := "✅ Applied comprehensive markdown fixes\n" +
		"REPORT.md:12 unlabeled fence, suggested ```http\n" +
		"    GET /api/health\n" +
		"--- a/REPORT.md\n" +
		"+++ b/REPORT.md\n" +
		"@@ -1,1 +1,1 @@\n" +
		"-a\n" +
		"+b\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_DiffKeepsTabs(t *testing.T) {
	var buf bytes.Buffer
	printer := pretty.NewPrinter(&buf, "never")

	d := diff.Compute("page.tsx", []byte("<div>\n\tindented\nold\n"), []byte("<div>\n\tindented\nnew\n"))
	require.True(t, d.HasChanges())

	printer.Diff(d)

	assert.Equal(t, d.String(), buf.String())
	assert.Contains(t, buf.String(), " \tindented\n")
}

func TestNewStyles_DiffStylesKeepTabs(t *testing.T) {
	styles := pretty.NewStyles(true)

	assert.Contains(t, styles.DiffContext.Render("\tindented"), "\tindented")
	assert.Contains(t, styles.DiffAdd.Render("+\tadded"), "+\tadded")
}
