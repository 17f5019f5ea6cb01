package printer

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderTerminal styles a markdown document for display in a terminal.
func RenderTerminal(doc string, width int) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("printer: creating terminal renderer: %w", err)
	}
	out, err := renderer.Render(doc)
	if err != nil {
		return "", fmt.Errorf("printer: rendering markdown: %w", err)
	}
	return out, nil
}
