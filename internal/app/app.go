// Package app wires configuration, scanning and output together for the
// command-line tool.
package app

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/bethropolis/codemd/internal/config"
	"github.com/bethropolis/codemd/internal/errs"
	"github.com/bethropolis/codemd/internal/logger"
	"github.com/bethropolis/codemd/internal/printer"
	"github.com/bethropolis/codemd/internal/scanner"
	"github.com/bethropolis/codemd/internal/setup"
	"github.com/bethropolis/codemd/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

// New creates an App writing the document to stdout (unless an output file
// is configured) and diagnostics to stderr.
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(stderr, cfg.Verbose, cfg.UseColors)
	switch {
	case cfg.LogLevel != "":
		log.SetLevel(cfg.LogLevel)
	case cfg.Quiet:
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log, stdout: stdout, stderr: stderr}
}

// Run performs one scan. Only configuration and output problems are
// returned; unreadable files and rule sources are logged as warnings.
func (a *App) Run() error {
	startTime := time.Now()
	cfg := a.cfg

	a.log.Info("Scanning directory: %s", cfg.RootDir)
	a.log.Info("Including extensions: %s", strings.Join(sortedCopy(cfg.Extensions), ", "))
	if len(cfg.ExcludePatterns) > 0 {
		a.log.Info("Excluding patterns: %s", strings.Join(sortedCopy(cfg.ExcludePatterns), ", "))
	}
	if len(cfg.ExcludeExtensions) > 0 {
		a.log.Info("Excluding extensions: %s", strings.Join(sortedCopy(cfg.ExcludeExtensions), ", "))
	}

	// the root is checked before any rule file is read
	if err := scanner.ValidateRoot(cfg.RootDir); err != nil {
		return err
	}

	policy, err := setup.ConfigurePolicy(setup.PolicyConfig{
		RootDir:           cfg.RootDir,
		Extensions:        cfg.Extensions,
		ExcludePatterns:   cfg.ExcludePatterns,
		ExcludeExtensions: cfg.ExcludeExtensions,
		IgnoreFiles:       cfg.IgnoreFiles,
		DisableDiscovery:  cfg.NoIgnore,
		NestedIgnore:      cfg.NestedIgnore,
		Logger:            a.log,
	}, a.log.Info)
	if err != nil {
		return err
	}

	res, err := scanner.Scan(scanner.Options{
		Root:        cfg.RootDir,
		Recursive:   !cfg.NoRecursive,
		NoStructure: cfg.NoStructure,
		MaxFileSize: cfg.MaxFileSizeMB * 1024 * 1024,
		Logger:      a.log,
	}, policy)
	if err != nil {
		return err
	}

	if err := a.write(res); err != nil {
		return err
	}

	summary.DisplayResults(a.log, len(res.Files), time.Since(startTime))
	if n := a.log.Warnings(); n > 0 {
		a.log.Info("Completed with %d warnings.", n)
	}
	if cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, res.Skipped, a.stderr)
	}
	return nil
}

func (a *App) write(res *scanner.Result) error {
	p := printer.New().
		WithJSON(a.cfg.JSONOutput).
		WithRender(a.cfg.RenderEnabled(), 0)

	if a.cfg.OutputFile == "" {
		_, err := p.WithOutput(a.stdout).WithTrailingNewline(true).Print(res)
		return errs.Wrap(err, errs.ErrOutput, "", "could not write output")
	}

	f, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return errs.Wrap(err, errs.ErrOutput, a.cfg.OutputFile, "could not create output file")
	}
	chars, err := p.WithOutput(f).Print(res)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errs.Wrap(err, errs.ErrOutput, a.cfg.OutputFile, "could not write output file")
	}

	summary.DisplayOutput(a.log, a.cfg.OutputFile, chars)
	return nil
}
