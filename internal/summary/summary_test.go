package summary

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/codemd/internal/walker"
	"github.com/stretchr/testify/assert"
)

type recorder struct{ lines []string }

func (r *recorder) Info(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestDisplayResults(t *testing.T) {
	var r recorder
	DisplayResults(&r, 3, 1500*time.Microsecond)
	assert.Equal(t, []string{"Found and processed 3 files.", "Scan complete in 2ms."}, r.lines)
}

func TestDisplayOutput(t *testing.T) {
	var r recorder
	DisplayOutput(&r, "out.md", 42)
	assert.Equal(t, []string{"Success! Output written to: out.md", "Total characters: 42"}, r.lines)
}

func TestDisplaySkippedItems(t *testing.T) {
	var r recorder
	var out bytes.Buffer
	items := []walker.SkippedItem{
		{Path: "z.txt", Reason: "Ignored (Ignore Rule)", Detail: "*.txt"},
		{Path: "build", Reason: "Ignored (Ignore Rule)", Detail: "build/", IsDir: true},
	}
	DisplaySkippedItems(&r, items, &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"Skipped DIR : build [Ignored (Ignore Rule): build/]",
		"Skipped FILE: z.txt [Ignored (Ignore Rule): *.txt]",
	}, lines)
	assert.Equal(t, "z.txt", items[0].Path, "input order is left alone")
	assert.Equal(t, "--- Skipped Items (2) ---", r.lines[0])
}

func TestDisplaySkippedItemsEmpty(t *testing.T) {
	var r recorder
	var out bytes.Buffer
	DisplaySkippedItems(&r, nil, &out)
	assert.Empty(t, out.String())
	assert.Contains(t, r.lines, "No items were skipped.")
}
