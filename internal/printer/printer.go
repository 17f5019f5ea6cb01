// Package printer turns a scan result into the output document and writes
// it to the configured destination.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/codemd/internal/scanner"
)

// StructureHeading opens the tree section of the markdown document.
const StructureHeading = "# Repository Structure"

const fence = "```"

// Printer handles output formatting and writing to the configured output destination
type Printer struct {
	output          io.Writer
	jsonOutput      bool
	render          bool
	renderWidth     int
	trailingNewline bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{output: os.Stdout}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// WithRender renders the markdown for a terminal before writing it. width
// of 0 keeps the renderer's default wrapping.
func (p *Printer) WithRender(enabled bool, width int) *Printer {
	p.render = enabled
	p.renderWidth = width
	return p
}

// WithTrailingNewline terminates the written document with a newline.
func (p *Printer) WithTrailingNewline(enabled bool) *Printer {
	p.trailingNewline = enabled
	return p
}

// Markdown builds the document: an optional structure section, then one
// fenced block per file, each followed by a blank line.
func Markdown(res *scanner.Result) string {
	var lines []string
	if !res.NoStructure {
		lines = append(lines, StructureHeading)
		if res.Tree != "" {
			lines = append(lines, res.Tree)
		}
		lines = append(lines, "")
	}
	for _, f := range res.Files {
		lines = append(lines,
			"# "+f.RelativePath,
			fence+f.Extension,
			string(f.Content),
			fence,
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// JSONFileEntry represents a file entry in JSON output
type JSONFileEntry struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
	Content   string `json:"content"`
}

// JSONDocument is the JSON form of a scan.
type JSONDocument struct {
	Structure *string         `json:"structure,omitempty"`
	Files     []JSONFileEntry `json:"files"`
}

// JSON encodes res as an indented JSONDocument.
func JSON(res *scanner.Result) (string, error) {
	doc := JSONDocument{Files: make([]JSONFileEntry, 0, len(res.Files))}
	if !res.NoStructure {
		tree := res.Tree
		doc.Structure = &tree
	}
	for _, f := range res.Files {
		doc.Files = append(doc.Files, JSONFileEntry{
			Path:      f.RelativePath,
			Extension: f.Extension,
			Content:   string(f.Content),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("printer: marshaling JSON: %w", err)
	}
	return string(data), nil
}

// Format produces the document text for res in the configured format.
func (p *Printer) Format(res *scanner.Result) (string, error) {
	if p.jsonOutput {
		return JSON(res)
	}
	doc := Markdown(res)
	if p.render {
		return RenderTerminal(doc, p.renderWidth)
	}
	return doc, nil
}

// Print formats res and writes it. It returns the number of characters in
// the document.
func (p *Printer) Print(res *scanner.Result) (int, error) {
	doc, err := p.Format(res)
	if err != nil {
		return 0, err
	}
	out := doc
	if p.trailingNewline {
		out += "\n"
	}
	if _, err := io.WriteString(p.output, out); err != nil {
		return 0, err
	}
	return len([]rune(doc)), nil
}
