package walker

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/codemd/internal/errs"
)

// readFile loads one candidate. The file is opened, read and closed before
// returning, whatever the outcome.
func readFile(c candidate, options WalkOptions, tracker *SkippedTracker) (File, bool) {
	options.Logger.Debug("readFile: Reading [%s]", c.relativePath)

	if options.MaxFileSize > 0 {
		info, err := os.Stat(c.path)
		if err != nil {
			warnSkip(options, c, errs.Wrap(err, errs.ErrFileRead, c.relativePath, "failed to get file info"))
			tracker.Track(c.relativePath, ReasonSkippedInfoError, "", false)
			return File{}, false
		}
		if info.Size() > options.MaxFileSize {
			warnSkip(options, c, errs.New(errs.ErrFileRead, c.relativePath,
				"file size %d exceeds limit %d bytes", info.Size(), options.MaxFileSize))
			tracker.Track(c.relativePath, ReasonSkippedSizeLimit, fmt.Sprintf("%d bytes", info.Size()), false)
			return File{}, false
		}
	}

	content, err := os.ReadFile(c.path)
	if err != nil {
		warnSkip(options, c, errs.Wrap(err, errs.ErrFileRead, c.relativePath, "failed to read file"))
		tracker.Track(c.relativePath, ReasonSkippedReadError, "", false)
		return File{}, false
	}
	if !utf8.Valid(content) {
		warnSkip(options, c, errs.New(errs.ErrFileRead, c.relativePath, "content is not valid UTF-8"))
		tracker.Track(c.relativePath, ReasonSkippedNotText, "", false)
		return File{}, false
	}

	options.Logger.Debug("readFile Success [%s]: Read %d bytes.", c.relativePath, len(content))
	return File{
		Path:         c.path,
		RelativePath: c.relativePath,
		Extension:    extensionOf(c.path),
		Content:      content,
	}, true
}

func warnSkip(options WalkOptions, c candidate, err error) {
	options.Logger.Warn("Error processing %s: %v", c.path, err)
}
