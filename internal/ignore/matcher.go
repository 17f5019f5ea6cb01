package ignore

import (
	"strings"

	"github.com/bethropolis/codemd/internal/utils"
)

// Compile parses lines into an IgnoreMatcher, dropping blanks and comments.
func Compile(lines []string, opts ...Option) *IgnoreMatcher {
	m := &IgnoreMatcher{logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(m)
	}

	for i, line := range lines {
		r, ok := ParseRule(line)
		if !ok {
			continue
		}
		r.Line = i + 1
		m.rules = append(m.rules, r)
	}
	m.logger.Debug("ignore.Compile: %d rules from %d lines", len(m.rules), len(lines))
	return m
}

// Rules returns a copy of the compiled rules in declaration order.
func (m *IgnoreMatcher) Rules() []Rule {
	if m == nil {
		return nil
	}
	return append([]Rule(nil), m.rules...)
}

// Len reports the number of compiled rules.
func (m *IgnoreMatcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// ShouldIgnore reports whether relativePath is ignored. The root itself
// ("" or ".") is never ignored.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil || len(m.rules) == 0 {
		return false
	}

	ignored := excludedWithAncestors(splitPath(relativePath), isDir, func(segs []string, dir bool) bool {
		_, ignored, _ := fold(m.rules, segs, dir)
		return ignored
	})
	if ignored {
		m.logger.Debug("ignore.ShouldIgnore: %q ignored (isDir: %v)", relativePath, isDir)
	}
	return ignored
}

// Explain returns the rule that ignores relativePath, either directly or
// through an ignored ancestor.
func (m *IgnoreMatcher) Explain(relativePath string, isDir bool) (Rule, bool) {
	if m == nil {
		return Rule{}, false
	}
	segs := splitPath(relativePath)
	for i := 1; i <= len(segs); i++ {
		dir := isDir || i < len(segs)
		last, ignored, _ := fold(m.rules, segs[:i], dir)
		if ignored {
			return m.rules[last], true
		}
	}
	return Rule{}, false
}

func (m *IgnoreMatcher) String() string {
	if m == nil {
		return ""
	}
	patterns := make([]string, len(m.rules))
	for i, r := range m.rules {
		patterns[i] = r.Pattern
	}
	return strings.Join(patterns, "\n")
}
