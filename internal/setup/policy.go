// Package setup builds the filter policy for a scan from its settings
package setup

import (
	"strings"

	"github.com/bethropolis/codemd/internal/errs"
	"github.com/bethropolis/codemd/internal/filter"
	"github.com/bethropolis/codemd/internal/ignore"
	"github.com/bethropolis/codemd/internal/utils"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...any)

// PolicyConfig holds all parameters needed to build a filter policy
type PolicyConfig struct {
	RootDir           string
	Extensions        []string
	ExcludePatterns   []string
	ExcludeExtensions []string
	IgnoreFiles       []string
	DisableDiscovery  bool
	NestedIgnore      bool
	Logger            utils.Logger
}

// ConfigurePolicy discovers and compiles the ignore rules and combines them
// with the extension and substring filters. Unreadable rule files only
// produce warnings.
func ConfigurePolicy(cfg PolicyConfig, infoLog InfoLogger) (*filter.Policy, error) {
	log := utils.OrNoop(cfg.Logger)
	if infoLog == nil {
		infoLog = func(string, ...any) {}
	}

	sources := ignore.DiscoverSources(cfg.RootDir, cfg.IgnoreFiles, cfg.DisableDiscovery)
	if len(sources) > 0 {
		infoLog("Using ignore rules from: %s", strings.Join(sources, ", "))
	}
	matcher := ignore.Compile(ignore.ReadSources(sources, log), ignore.WithLogger(log))
	log.Debug("setup: %d ignore rules compiled", matcher.Len())

	var checker ignore.Checker = matcher
	if cfg.NestedIgnore {
		repo, err := ignore.NewRepository(cfg.RootDir, log)
		if err != nil {
			return nil, errs.Wrap(err, errs.ErrConfig, cfg.RootDir, "could not load nested ignore files")
		}
		infoLog("Honouring nested .gitignore files.")
		checker = ignore.Chain{matcher, repo}
	}

	extensions := cfg.Extensions
	if len(extensions) == 0 {
		extensions = filter.DefaultExtensions
	}

	policy, err := filter.New(cfg.RootDir,
		filter.WithExtensions(extensions),
		filter.WithExcludePatterns(cfg.ExcludePatterns),
		filter.WithExcludeExtensions(cfg.ExcludeExtensions),
		filter.WithMatcher(checker),
		filter.WithLogger(log),
	)
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrConfig, cfg.RootDir, "could not build filter policy")
	}
	return policy, nil
}
