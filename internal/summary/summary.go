// Package summary reports scan results and skipped items on the
// diagnostic stream.
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/codemd/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...any)
}

// DisplayResults shows the end results of a scan operation
func DisplayResults(logger Logger, fileCount int, duration time.Duration) {
	logger.Info("Found and processed %d files.", fileCount)
	logger.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplayOutput reports where the document went and how long it is.
func DisplayOutput(logger Logger, outputFile string, chars int) {
	logger.Info("Success! Output written to: %s", outputFile)
	logger.Info("Total characters: %d", chars)
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
		logger.Info("--- End Skipped Items ---")
		return
	}

	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return walker.ComparePaths(items[i].Path, items[j].Path) < 0
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		reason := string(item.Reason)
		if item.Detail != "" {
			reason = fmt.Sprintf("%s: %s", reason, item.Detail)
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n", typeStr, 50, item.Path, reason)
	}
	logger.Info("--- End Skipped Items ---")
}
