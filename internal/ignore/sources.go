package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/codemd/internal/errs"
	"github.com/bethropolis/codemd/internal/utils"
)

// DiscoverSources picks the rule files for a scan. Explicit sources win;
// otherwise the root's DefaultIgnoreFile is used when present and discovery
// is enabled.
func DiscoverSources(root string, explicit []string, disableDiscovery bool) []string {
	if len(explicit) > 0 {
		return append([]string(nil), explicit...)
	}
	if disableDiscovery {
		return nil
	}
	candidate := filepath.Join(root, DefaultIgnoreFile)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return []string{candidate}
	}
	return nil
}

// ReadSources concatenates the lines of every readable source, in order.
// Unreadable sources are logged as warnings and skipped.
func ReadSources(paths []string, logger utils.Logger) []string {
	logger = utils.OrNoop(logger)

	var lines []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("%v", errs.Wrap(err, errs.ErrSourceUnreadable, path, "could not read ignore file"))
			continue
		}
		n := len(lines)
		lines = append(lines, strings.Split(string(data), "\n")...)
		logger.Debug("ignore.ReadSources: %d lines from %s", len(lines)-n, path)
	}
	return lines
}
