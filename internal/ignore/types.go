// Package ignore decides which paths are excluded by gitignore-style rules.
//
// Rules are compiled once into an IgnoreMatcher. A path's verdict is the
// verdict of the last rule that matches it, and a path whose ancestor
// directory is ignored stays ignored whatever later negation rules say.
package ignore

import "github.com/bethropolis/codemd/internal/utils"

// DefaultIgnoreFile is discovered at the scan root when no explicit rule
// source is configured.
const DefaultIgnoreFile = ".gitignore"

// Checker reports whether a root-relative path is ignored.
type Checker interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// Explainer is implemented by checkers that can name the deciding rule.
type Explainer interface {
	Explain(relativePath string, isDir bool) (Rule, bool)
}

// IgnoreMatcher is an immutable, ordered set of compiled rules.
type IgnoreMatcher struct {
	rules  []Rule
	logger utils.Logger
}

// Option configures an IgnoreMatcher
type Option func(*IgnoreMatcher)

// WithLogger sets the logger used for per-path debug output.
func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		m.logger = utils.OrNoop(logger)
	}
}
