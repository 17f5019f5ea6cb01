// Package scanner runs one scan: it validates the root, renders the tree
// and aggregates file contents under a single filter policy.
package scanner

import (
	"os"
	"path/filepath"

	"github.com/bethropolis/codemd/internal/errs"
	"github.com/bethropolis/codemd/internal/filter"
	"github.com/bethropolis/codemd/internal/tree"
	"github.com/bethropolis/codemd/internal/utils"
	"github.com/bethropolis/codemd/internal/walker"
)

// Options controls a scan.
type Options struct {
	// Root is the directory to scan, as given by the user.
	Root        string
	Recursive   bool
	NoStructure bool
	MaxFileSize int64
	Logger      utils.Logger
}

// Result is everything one scan produced. It is not reused across scans.
type Result struct {
	Root string
	// Tree is the rendered outline; empty when NoStructure is set or when
	// nothing survived filtering.
	Tree        string
	Files       []walker.File
	Skipped     []walker.SkippedItem
	NoStructure bool
}

// ValidateRoot fails with an errs.ErrConfig error unless root is an
// existing directory.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.New(errs.ErrConfig, root, "directory does not exist")
		}
		return errs.Wrap(err, errs.ErrConfig, root, "could not access directory")
	}
	if !info.IsDir() {
		return errs.New(errs.ErrConfig, root, "not a directory")
	}
	return nil
}

// Scan validates the root before touching anything else, aggregates the
// contents and then renders the tree with the same policy.
func Scan(opts Options, policy *filter.Policy) (*Result, error) {
	if err := ValidateRoot(opts.Root); err != nil {
		return nil, err
	}
	logger := utils.OrNoop(opts.Logger)
	root := filepath.Clean(opts.Root)

	res := &Result{Root: root, NoStructure: opts.NoStructure}
	walked, err := walker.Walk(root, policy,
		walker.WithLogger(logger),
		walker.WithRecursive(opts.Recursive),
		walker.WithMaxFileSize(opts.MaxFileSize),
	)
	if err != nil {
		return nil, err
	}
	res.Files = walked.Files
	res.Skipped = walked.Skipped

	// the outline lists only files whose contents made it into the result
	if !opts.NoStructure {
		visible := readableFilter{policy: policy, root: root, failed: map[string]struct{}{}}
		for _, item := range walked.Skipped {
			if item.ReadFailed() {
				visible.failed[item.Path] = struct{}{}
			}
		}
		res.Tree = tree.New(visible, tree.WithLogger(logger)).Render(root)
	}

	logger.Debug("scanner: %d files, %d skipped", len(res.Files), len(res.Skipped))
	return res, nil
}

// readableFilter is the policy minus the files that could not be read.
type readableFilter struct {
	policy *filter.Policy
	root   string
	failed map[string]struct{}
}

func (f readableFilter) ShouldInclude(path string, isDir bool) bool {
	if !isDir {
		if rel, err := filepath.Rel(f.root, path); err == nil {
			if _, ok := f.failed[filepath.ToSlash(rel)]; ok {
				return false
			}
		}
	}
	return f.policy.ShouldInclude(path, isDir)
}
