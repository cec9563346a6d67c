package diff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/fixups/pkg/diff"
)

func TestCompute_NoChanges(t *testing.T) {
	t.Parallel()

	assert.Nil(t, diff.Compute("a.md", []byte("same\n"), []byte("same\n")))
	assert.Nil(t, diff.Compute("a.md", nil, nil))
}

func TestCompute_SingleLineChange(t *testing.T) {
	t.Parallel()

	before := "# Title\n\n**1. Seed Phrase Recovery**\n\nBody\n"
	after := "# Title\n\n#### 1. Seed Phrase Recovery\n\nBody\n"

	result := diff.Compute("report.md", []byte(before), []byte(after))
	require.NotNil(t, result)

	want := strings.Join([]string{
		"--- a/report.md",
		"+++ b/report.md",
		"@@ -1,5 +1,5 @@",
		" # Title",
		" ",
		"-**1. Seed Phrase Recovery**",
		"+#### 1. Seed Phrase Recovery",
		" ",
		" Body",
		"",
	}, "\n")

	assert.Equal(t, want, result.String())
	assert.Equal(t, 1, result.Additions)
	assert.Equal(t, 1, result.Deletions)
}

func TestCompute_SeparateHunks(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := range 20 {
		line := "line " + string(rune('a'+i))
		before = append(before, line)
		after = append(after, line)
	}
	after[1] = "changed b"
	after[18] = "changed s"

	result := diff.Compute("x.md", []byte(strings.Join(before, "\n")), []byte(strings.Join(after, "\n")))
	require.NotNil(t, result)
	require.Len(t, result.Hunks, 2)

	assert.Equal(t, "@@ -1,5 +1,5 @@", result.Hunks[0].Header())
	assert.Equal(t, "@@ -16,5 +16,5 @@", result.Hunks[1].Header())
}

func TestCompute_MergesCloseChanges(t *testing.T) {
	t.Parallel()

	before := "a\nb\nc\nd\ne\nf\n"
	after := "A\nb\nc\nd\ne\nF\n"

	result := diff.Compute("x.md", []byte(before), []byte(after))
	require.NotNil(t, result)

	assert.Len(t, result.Hunks, 1)
	assert.Equal(t, "@@ -1,6 +1,6 @@", result.Hunks[0].Header())
}

func TestCompute_AddedLines(t *testing.T) {
	t.Parallel()

	result := diff.Compute("x.md", []byte("a\n"), []byte("a\nb\n"))
	require.NotNil(t, result)

	assert.Equal(t, 1, result.Additions)
	assert.Equal(t, 0, result.Deletions)
	assert.True(t, result.HasChanges())
	assert.Contains(t, result.String(), "+b\n")
}
