package ignore

import (
	"strings"
)

// Rule is one parsed ignore line.
type Rule struct {
	// Pattern is the line as written, without trailing spaces.
	Pattern string
	// Line is the 1-based position of the rule in the compiled input.
	Line     int
	Negate   bool
	DirOnly  bool
	Anchored bool

	segments []string
}

// ParseRule parses one line of gitignore syntax. Blank lines and comments
// report false.
func ParseRule(line string) (Rule, bool) {
	line = trimTrailingSpaces(strings.TrimRight(line, "\r\n"))
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false
	}

	r := Rule{Pattern: line}
	body := line
	switch {
	case strings.HasPrefix(body, "!"):
		r.Negate = true
		body = body[1:]
	case strings.HasPrefix(body, `\!`), strings.HasPrefix(body, `\#`):
		body = body[1:]
	}

	if strings.HasSuffix(body, "/") {
		r.DirOnly = true
		body = strings.TrimSuffix(body, "/")
	}
	if strings.HasPrefix(body, "/") {
		r.Anchored = true
		body = strings.TrimLeft(body, "/")
	} else if strings.Contains(body, "/") {
		// a separator anywhere but the end ties the rule to the root
		r.Anchored = true
	}

	var segs []string
	for _, s := range strings.Split(body, "/") {
		if s == "" {
			continue
		}
		if s == "**" && len(segs) > 0 && segs[len(segs)-1] == "**" {
			continue
		}
		segs = append(segs, escapeLeadingBracket(s))
	}
	if len(segs) == 0 {
		return Rule{}, false
	}
	if !r.Anchored && segs[0] != "**" {
		segs = append([]string{"**"}, segs...)
	}
	r.segments = segs
	return r, true
}

// Segments returns the glob segments the rule matches against, including
// the leading "**" added to floating rules.
func (r Rule) Segments() []string {
	return append([]string(nil), r.segments...)
}

func (r Rule) String() string {
	return r.Pattern
}

// escapeLeadingBracket escapes a "]" that opens a character class ("[]a]",
// "[!]a]"), which is a literal member in gitignore but ends the class for
// fnmatch.
func escapeLeadingBracket(seg string) string {
	if !strings.Contains(seg, "[") {
		return seg
	}
	var b strings.Builder
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		b.WriteByte(c)
		if c == '\\' && i+1 < len(seg) {
			i++
			b.WriteByte(seg[i])
			continue
		}
		if c != '[' {
			continue
		}
		j := i + 1
		if j < len(seg) && (seg[j] == '!' || seg[j] == '^') {
			j++
		}
		if j < len(seg) && seg[j] == ']' && strings.IndexByte(seg[j+1:], ']') >= 0 {
			b.WriteString(seg[i+1 : j])
			b.WriteString(`\]`)
			i = j
		}
	}
	return b.String()
}

// trimTrailingSpaces drops unescaped trailing spaces.
func trimTrailingSpaces(s string) string {
	for strings.HasSuffix(s, " ") && !strings.HasSuffix(s, `\ `) {
		s = s[:len(s)-1]
	}
	return s
}
