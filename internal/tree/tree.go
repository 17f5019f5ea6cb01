// Package tree renders the filtered directory outline that heads the
// generated document.
package tree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/codemd/internal/utils"
)

// Filter decides which entries appear in the outline.
type Filter interface {
	ShouldInclude(path string, isDir bool) bool
}

var markdownEscaper = strings.NewReplacer(`*`, `\*`, `_`, `\_`)

// Renderer builds markdown bullet outlines of a directory.
type Renderer struct {
	filter Filter
	logger utils.Logger
	indent string
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLogger sets the logger used for debug output.
func WithLogger(logger utils.Logger) Option {
	return func(r *Renderer) {
		r.logger = utils.OrNoop(logger)
	}
}

// New creates a Renderer applying filter to every entry.
func New(filter Filter, opts ...Option) *Renderer {
	r := &Renderer{filter: filter, logger: utils.NoopLogger{}, indent: "  "}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render walks root once and returns the outline, one entry per line.
// Hidden entries are skipped and directories with nothing left to show are
// omitted at every depth. The result is empty when nothing survives.
func (r *Renderer) Render(root string) string {
	lines, _ := r.render(root, 0)
	return strings.Join(lines, "\n")
}

// render returns the fragment for dir and whether it has any entry.
func (r *Renderer) render(dir string, depth int) ([]string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// unlistable directories render as empty
		r.logger.Debug("tree: cannot list %q: %v", dir, err)
		return nil, false
	}

	indent := strings.Repeat(r.indent, depth)
	var lines []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if !r.filter.ShouldInclude(path, true) {
				continue
			}
			sub, ok := r.render(path, depth+1)
			if !ok {
				continue
			}
			lines = append(lines, indent+"* **"+EscapeName(name)+"/**")
			lines = append(lines, sub...)
			continue
		}

		if r.filter.ShouldInclude(path, false) {
			lines = append(lines, indent+"* "+EscapeName(name))
		}
	}
	return lines, len(lines) > 0
}

// EscapeName escapes the markdown emphasis characters in an entry name.
func EscapeName(name string) string {
	return markdownEscaper.Replace(name)
}
