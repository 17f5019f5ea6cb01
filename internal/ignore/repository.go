package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/codemd/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Repository honours every .gitignore below a root, each scoped to its own
// directory, using the go-gitignore repository matcher.
type Repository struct {
	root   string
	repo   gitignore.GitIgnore
	logger utils.Logger
}

// NewRepository loads the .gitignore hierarchy under root. Pattern errors
// are logged as warnings and the offending lines skipped.
func NewRepository(root string, logger utils.Logger) (*Repository, error) {
	logger = utils.OrNoop(logger)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for '%s': %w", root, err)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("ignore: repository root '%s' is not a directory", absRoot)
	}

	// load and parse failures are reported through the callback
	repo := gitignore.NewRepositoryWithErrors(absRoot, DefaultIgnoreFile, func(e gitignore.Error) bool {
		logger.Warn("ignore: skipping invalid pattern: %v", e)
		return true
	})

	logger.Debug("ignore.NewRepository: loaded nested ignore files under %s", absRoot)
	return &Repository{root: absRoot, repo: repo, logger: logger}, nil
}

// ShouldIgnore applies the nested files. Ancestor exclusion is enforced the
// same way as for IgnoreMatcher.
func (r *Repository) ShouldIgnore(relativePath string, isDir bool) bool {
	if r == nil {
		return false
	}
	return excludedWithAncestors(splitPath(relativePath), isDir, r.lookup)
}

func (r *Repository) lookup(segs []string, isDir bool) (ignored bool) {
	path := strings.Join(segs, "/")
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("PANIC recovered in gitignore library for path %q: %v", path, rec)
			ignored = false
		}
	}()

	match := r.repo.Relative(filepath.FromSlash(path), isDir)
	return match != nil && match.Ignore()
}

// Chain ignores a path when any of its checkers does.
type Chain []Checker

func (c Chain) ShouldIgnore(relativePath string, isDir bool) bool {
	for _, checker := range c {
		if checker != nil && checker.ShouldIgnore(relativePath, isDir) {
			return true
		}
	}
	return false
}

// Explain asks each checker that can explain itself, in order.
func (c Chain) Explain(relativePath string, isDir bool) (Rule, bool) {
	for _, checker := range c {
		e, ok := checker.(Explainer)
		if !ok || !checker.ShouldIgnore(relativePath, isDir) {
			continue
		}
		if r, ok := e.Explain(relativePath, isDir); ok {
			return r, true
		}
	}
	return Rule{}, false
}
