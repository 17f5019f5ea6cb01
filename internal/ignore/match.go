package ignore

import (
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// Verdict folds rules over path in declaration order. ignored is the verdict
// of the last matching rule, matched reports whether any rule matched.
// Ancestor directories are not consulted; see IgnoreMatcher.ShouldIgnore.
func Verdict(rules []Rule, path string, isDir bool) (ignored, matched bool) {
	_, ignored, matched = fold(rules, splitPath(path), isDir)
	return ignored, matched
}

func fold(rules []Rule, segs []string, isDir bool) (last int, ignored, matched bool) {
	last = -1
	for i := range rules {
		if rules[i].matches(segs, isDir) {
			last, ignored, matched = i, !rules[i].Negate, true
		}
	}
	return last, ignored, matched
}

func (r *Rule) matches(segs []string, isDir bool) bool {
	if len(segs) == 0 {
		return false
	}
	if r.DirOnly && !isDir {
		return false
	}
	return matchSegments(r.segments, segs)
}

// matchSegments matches glob segments against path segments. A "**" segment
// spans zero or more path segments, except in last position where it needs
// at least one (so "dir/**" matches the contents of dir, not dir).
func matchSegments(pattern, path []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return len(path) > 0
			}
			for i := 0; i <= len(path); i++ {
				if matchSegments(rest, path[i:]) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 || !fnmatch.Match(pattern[0], path[0], fnmatch.FNM_PATHNAME) {
			return false
		}
		pattern, path = pattern[1:], path[1:]
	}
	return len(path) == 0
}

// excludedWithAncestors evaluates each ancestor directory root-most first;
// an ignored ancestor ignores everything below it.
func excludedWithAncestors(segs []string, isDir bool, ignored func(segs []string, isDir bool) bool) bool {
	if len(segs) == 0 {
		return false
	}
	for i := 1; i < len(segs); i++ {
		if ignored(segs[:i], true) {
			return true
		}
	}
	return ignored(segs, isDir)
}

func splitPath(path string) []string {
	path = filepath.ToSlash(path)
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		segs = append(segs, p)
	}
	return segs
}
