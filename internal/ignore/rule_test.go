package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleSkipsBlankAndComments(t *testing.T) {
	for _, line := range []string{"", "   ", "# comment", "#", "\r", "/", "!/"} {
		_, ok := ParseRule(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestParseRuleAttributes(t *testing.T) {
	tests := []struct {
		line     string
		negate   bool
		dirOnly  bool
		anchored bool
		segments []string
	}{
		{"*.py", false, false, false, []string{"**", "*.py"}},
		{"!important.py", true, false, false, []string{"**", "important.py"}},
		{"build/", false, true, false, []string{"**", "build"}},
		{"/build", false, false, true, []string{"build"}},
		{"/build/", false, true, true, []string{"build"}},
		{"docs/*.md", false, false, true, []string{"docs", "*.md"}},
		{"**/cache", false, false, true, []string{"**", "cache"}},
		{"a/**/**/b", false, false, true, []string{"a", "**", "b"}},
		{"logs/**", false, false, true, []string{"logs", "**"}},
		{`\#notes`, false, false, false, []string{"**", "#notes"}},
		{`\!bang`, false, false, false, []string{"**", "!bang"}},
		{"trailing   ", false, false, false, []string{"**", "trailing"}},
		{"crlf\r", false, false, false, []string{"**", "crlf"}},
		{"[]]x", false, false, false, []string{"**", `[\]]x`}},
		{"[!]a]/", false, true, false, []string{"**", `[!\]a]`}},
		{"[]", false, false, false, []string{"**", "[]"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r, ok := ParseRule(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.negate, r.Negate, "negate")
			assert.Equal(t, tt.dirOnly, r.DirOnly, "dirOnly")
			assert.Equal(t, tt.anchored, r.Anchored, "anchored")
			assert.Equal(t, tt.segments, r.Segments())
		})
	}
}

func TestParseRuleKeepsEscapedTrailingSpace(t *testing.T) {
	r, ok := ParseRule(`name\ `)
	require.True(t, ok)
	assert.Equal(t, `name\ `, r.Pattern)
}
