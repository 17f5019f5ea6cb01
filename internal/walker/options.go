package walker

import (
	"github.com/bethropolis/codemd/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger      utils.Logger
	Recursive   bool
	MaxFileSize int64
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:      utils.NoopLogger{},
		Recursive:   true,
		MaxFileSize: 0, // No limit
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithRecursive selects a full-depth walk (the default) or the root's
// entries only.
func WithRecursive(recursive bool) Option {
	return func(opts *WalkOptions) {
		opts.Recursive = recursive
	}
}

// WithMaxFileSize skips files larger than maxBytes; 0 disables the limit.
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		if maxBytes >= 0 {
			opts.MaxFileSize = maxBytes
		}
	}
}
