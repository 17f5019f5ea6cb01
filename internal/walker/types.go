// Package walker enumerates, filters, sorts and reads the files whose
// contents go into the generated document.
package walker

import (
	"github.com/bethropolis/codemd/internal/filter"
)

// Filter decides which files are aggregated.
type Filter interface {
	Evaluate(path string, isDir bool) filter.Decision
}

// File is one aggregated file.
type File struct {
	// Path is the file's path as reached from the scan root argument.
	Path string `json:"-"`
	// RelativePath is relative to the scan root, with forward slashes.
	RelativePath string `json:"path"`
	Extension    string `json:"extension"`
	Content      []byte `json:"-"`
}

// Result holds the aggregated files in sorted order plus everything that
// was left out.
type Result struct {
	Files   []File
	Skipped []SkippedItem
}

// SkippedReason clarifies why a file/directory was not aggregated.
type SkippedReason string

const (
	ReasonSkippedSizeLimit  SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedReadError  SkippedReason = "Skipped (Read Error)"
	ReasonSkippedNotText    SkippedReason = "Skipped (Not UTF-8 Text)"
	ReasonSkippedInfoError  SkippedReason = "Skipped (File Info Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	Detail string        `json:"detail,omitempty"`
	IsDir  bool          `json:"is_dir"`
}

// ReadFailed reports whether the item passed every filter but could not be
// read.
func (item SkippedItem) ReadFailed() bool {
	switch item.Reason {
	case ReasonSkippedReadError, ReasonSkippedNotText, ReasonSkippedSizeLimit, ReasonSkippedInfoError:
		return !item.IsDir
	}
	return false
}

// SkippedTracker records skipped paths in the order they were met.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, detail string, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, Detail: detail, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
