// Package filter combines ignore rules with extension and substring
// filters into a single include/exclude decision.
package filter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/codemd/internal/ignore"
	"github.com/bethropolis/codemd/internal/utils"
)

// DefaultExtensions is the allow-list used when none is configured.
var DefaultExtensions = []string{"py", "java", "js", "cpp", "c", "h", "hpp"}

// Reason explains why a path was excluded.
type Reason string

const (
	ReasonIncluded          Reason = ""
	ReasonIgnoredRule       Reason = "Ignored (Ignore Rule)"
	ReasonFilteredExtension Reason = "Filtered (Extension Not Allowed)"
	ReasonExcludedPattern   Reason = "Excluded (Pattern)"
	ReasonExcludedExtension Reason = "Excluded (Extension)"
)

// Decision is the outcome of Evaluate.
type Decision struct {
	Include bool
	Reason  Reason
	// Detail names the rule, pattern or suffix behind an exclusion.
	Detail string
}

// Policy is built once per scan and never modified afterwards.
type Policy struct {
	root              string
	allowed           map[string]struct{}
	excludePatterns   []string
	excludeExtensions []string
	matcher           ignore.Checker
	logger            utils.Logger
}

// Option configures a Policy
type Option func(*Policy)

// WithExtensions sets the allow-list. Leading dots and surrounding spaces
// are dropped; case is kept.
func WithExtensions(exts []string) Option {
	return func(p *Policy) {
		p.allowed = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
			if ext != "" {
				p.allowed[ext] = struct{}{}
			}
		}
	}
}

// WithExcludePatterns excludes any path containing one of patterns.
func WithExcludePatterns(patterns []string) Option {
	return func(p *Policy) {
		p.excludePatterns = nonEmpty(patterns)
	}
}

// WithExcludeExtensions excludes any path ending with one of suffixes.
func WithExcludeExtensions(suffixes []string) Option {
	return func(p *Policy) {
		p.excludeExtensions = nonEmpty(suffixes)
	}
}

// WithMatcher sets the ignore-rule checker. A nil checker disables rules.
func WithMatcher(m ignore.Checker) Option {
	return func(p *Policy) {
		p.matcher = m
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger utils.Logger) Option {
	return func(p *Policy) {
		p.logger = utils.OrNoop(logger)
	}
}

// New builds a Policy for root. The root is resolved to an absolute path
// once; it does not need to exist.
func New(root string, opts ...Option) (*Policy, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to get absolute path for '%s': %w", root, err)
	}

	p := &Policy{root: absRoot, logger: utils.NoopLogger{}}
	WithExtensions(DefaultExtensions)(p)
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Extensions returns the allow-list, sorted.
func (p *Policy) Extensions() []string {
	return sortedKeys(p.allowed)
}

// ShouldInclude reports whether path survives every filter. Directories are
// only checked against the ignore rules.
func (p *Policy) ShouldInclude(path string, isDir bool) bool {
	return p.Evaluate(path, isDir).Include
}

// Evaluate applies the filters in order and stops at the first exclusion.
func (p *Policy) Evaluate(path string, isDir bool) Decision {
	if p.matcher != nil {
		rel := p.RelativePath(path)
		if p.matcher.ShouldIgnore(rel, isDir) {
			d := Decision{Reason: ReasonIgnoredRule}
			if e, ok := p.matcher.(ignore.Explainer); ok {
				if r, ok := e.Explain(rel, isDir); ok {
					d.Detail = r.Pattern
				}
			}
			p.logger.Debug("filter: %q excluded by ignore rule %q", rel, d.Detail)
			return d
		}
	}
	if isDir {
		return Decision{Include: true}
	}

	ext := Extension(filepath.Base(path))
	if _, ok := p.allowed[ext]; !ok {
		return Decision{Reason: ReasonFilteredExtension, Detail: ext}
	}
	for _, pattern := range p.excludePatterns {
		if strings.Contains(path, pattern) {
			return Decision{Reason: ReasonExcludedPattern, Detail: pattern}
		}
	}
	for _, suffix := range p.excludeExtensions {
		if strings.HasSuffix(path, suffix) {
			return Decision{Reason: ReasonExcludedExtension, Detail: suffix}
		}
	}
	return Decision{Include: true}
}

// RelativePath expresses path relative to the scan root with forward
// slashes. Paths outside the root are returned unchanged (slash-converted).
func (p *Policy) RelativePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(p.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Extension returns the text after the last dot of name, without the dot.
// A leading dot alone (".bashrc") and a trailing dot ("name.") yield "".
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}
