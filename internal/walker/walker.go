package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bethropolis/codemd/internal/filter"
)

type candidate struct {
	path, relativePath string
}

// Walk collects the files under root that pass policy, sorts them by path
// and reads each one. Per-file problems are logged and tracked, never
// returned; unlistable directories are treated as empty.
func Walk(root string, policy Filter, opts ...Option) (*Result, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	tracker := NewSkippedTracker(64)
	options.Logger.Debug("walker.Walk started. Root: %s, Recursive: %v", root, options.Recursive)

	var candidates []candidate
	if options.Recursive {
		candidates = collectRecursive(root, policy, options, tracker)
	} else {
		candidates = collectFlat(root, policy, options, tracker)
	}
	sortCandidates(candidates)

	files := make([]File, 0, len(candidates))
	for _, c := range candidates {
		if f, ok := readFile(c, options, tracker); ok {
			files = append(files, f)
		}
	}

	options.Logger.Debug("Walker: %d files aggregated in %s", len(files), time.Since(startTime))
	return &Result{Files: files, Skipped: tracker.Items()}, nil
}

func collectRecursive(root string, policy Filter, options WalkOptions, tracker *SkippedTracker) []candidate {
	var out []candidate
	// a trailing separator makes WalkDir follow a root that is a symlink
	walkRoot := root
	if !strings.HasSuffix(walkRoot, string(filepath.Separator)) {
		walkRoot += string(filepath.Separator)
	}
	_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		relativePath := relativeTo(root, path)
		if err != nil {
			// permission and listing failures only lose that subtree
			reason := ReasonSkippedWalkError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Debug("Walker: cannot visit %q: %v", relativePath, err)
			tracker.Track(relativePath, reason, "", d != nil && d.IsDir())
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == walkRoot {
			return nil
		}

		if d.IsDir() {
			// an ignored directory ignores everything below it
			if dec := policy.Evaluate(path, true); !dec.Include {
				options.Logger.Debug("Walker: pruning %q", relativePath)
				tracker.Track(relativePath, SkippedReason(dec.Reason), dec.Detail, true)
				return filepath.SkipDir
			}
			return nil
		}

		if c, ok := consider(path, relativePath, d, policy, options, tracker); ok {
			out = append(out, c)
		}
		return nil
	})
	return out
}

func collectFlat(root string, policy Filter, options WalkOptions, tracker *SkippedTracker) []candidate {
	entries, err := os.ReadDir(root)
	if err != nil {
		options.Logger.Debug("Walker: cannot list %q: %v", root, err)
	}

	var out []candidate
	for _, d := range entries {
		if d.IsDir() {
			continue
		}
		path := filepath.Join(root, d.Name())
		if c, ok := consider(path, d.Name(), d, policy, options, tracker); ok {
			out = append(out, c)
		}
	}
	return out
}

// consider keeps regular files (or links to them) that the policy accepts.
func consider(path, relativePath string, d fs.DirEntry, policy Filter, options WalkOptions, tracker *SkippedTracker) (candidate, bool) {
	if !d.Type().IsRegular() {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			options.Logger.Debug("Walker: %q is not a regular file", relativePath)
			tracker.Track(relativePath, ReasonSkippedNotRegular, "", false)
			return candidate{}, false
		}
	}

	dec := policy.Evaluate(path, false)
	if !dec.Include {
		tracker.Track(relativePath, SkippedReason(dec.Reason), dec.Detail, false)
		return candidate{}, false
	}
	return candidate{path: path, relativePath: relativePath}, true
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// extensionOf mirrors the policy's notion of an extension for fence tags.
func extensionOf(path string) string {
	return filter.Extension(filepath.Base(path))
}
