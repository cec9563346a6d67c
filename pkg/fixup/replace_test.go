package fixup_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/fixups/pkg/fixup"
)

func TestApplyReplacements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		replacements []fixup.Replacement
		want         string
		wantChanges  int
	}{
		{
			name:         "all occurrences",
			input:        "a-a-a",
			replacements: []fixup.Replacement{{Name: "dash", Old: "-", New: "+"}},
			want:         "a+a+a",
			wantChanges:  1,
		},
		{
			name:         "limited",
			input:        "a-a-a",
			replacements: []fixup.Replacement{{Name: "dash", Old: "-", New: "+", Limit: 1}},
			want:         "a+a-a",
			wantChanges:  1,
		},
		{
			name:         "no match is silent",
			input:        "abc",
			replacements: []fixup.Replacement{{Name: "x", Old: "x", New: "y"}},
			want:         "abc",
		},
		{
			name:         "empty old is skipped",
			input:        "abc",
			replacements: []fixup.Replacement{{Name: "empty", Old: "", New: "y"}},
			want:         "abc",
		},
		{
			name:  "applied in order",
			input: "abc",
			replacements: []fixup.Replacement{
				{Name: "first", Old: "a", New: "b"},
				{Name: "second", Old: "bb", New: "z"},
			},
			want:        "zc",
			wantChanges: 2,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := fixup.ApplyReplacements([]byte(testCase.input), testCase.replacements)

			assert.Equal(t, testCase.want, string(result.Content))
			assert.Len(t, result.Changes, testCase.wantChanges)
		})
	}
}

func TestApplyPatterns(t *testing.T) {
	t.Parallel()

	t.Run("expands groups", func(t *testing.T) {
		t.Parallel()

		patterns := []fixup.PatternReplacement{{
			Name:     "wrap",
			Pattern:  regexp.MustCompile(`(\d+)`),
			Template: "[$1]",
		}}

		result := fixup.ApplyPatterns([]byte("a1 b22 c"), patterns)

		assert.Equal(t, "a[1] b[22] c", string(result.Content))
		require.Len(t, result.Changes, 1)
		assert.Equal(t, 2, result.Changes[0].Count)
		assert.Equal(t, "1", result.Changes[0].Before)
		assert.Equal(t, "[1]", result.Changes[0].After)
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		patterns := []fixup.PatternReplacement{{
			Name:     "wrap",
			Pattern:  regexp.MustCompile(`\d`),
			Template: "#",
			Limit:    1,
		}}

		result := fixup.ApplyPatterns([]byte("1 2 3"), patterns)

		assert.Equal(t, "# 2 3", string(result.Content))
	})

	t.Run("limit counts unchanged matches", func(t *testing.T) {
		t.Parallel()

		patterns := []fixup.PatternReplacement{{
			Name:     "brackets",
			Pattern:  regexp.MustCompile(`<?(x)>?`),
			Template: "<$1>",
			Limit:    1,
		}}

		result := fixup.ApplyPatterns([]byte("<x> x"), patterns)

		assert.Equal(t, "<x> x", string(result.Content))
		assert.False(t, result.Changed())
	})

	t.Run("identity matches are not changes", func(t *testing.T) {
		t.Parallel()

		patterns := []fixup.PatternReplacement{{
			Name:     "brackets",
			Pattern:  regexp.MustCompile(`<?(x)>?`),
			Template: "<$1>",
		}}

		result := fixup.ApplyPatterns([]byte("<x> <x>"), patterns)

		assert.Equal(t, "<x> <x>", string(result.Content))
		assert.False(t, result.Changed())
	})
}

func TestApplyLineRules_FirstMatchWins(t *testing.T) {
	t.Parallel()

	rules := []fixup.LineRule{
		{Name: "first", Match: func(lc fixup.LineContext) (string, bool) { return "one", lc.Line == "x" }},
		{Name: "second", Match: func(lc fixup.LineContext) (string, bool) { return "two", true }},
	}

	result := fixup.ApplyLineRules([]byte("x\ny\n"), rules)

	assert.Equal(t, "one\ntwo\n", string(result.Content))
	require.Len(t, result.Changes, 2)
	assert.Equal(t, "first", result.Changes[0].Rule)
	assert.Equal(t, "second", result.Changes[1].Rule)
}
