// Package config holds the run configuration: command-line flags, an
// optional TOML/YAML file and terminal detection.
package config

import (
	"os"
	"strings"

	"github.com/bethropolis/codemd/internal/filter"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// Version is reported by --version.
const Version = "1.0.0"

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Filtering settings
	Extensions        []string
	ExcludePatterns   []string
	ExcludeExtensions []string
	IgnoreFiles       []string
	NoIgnore          bool
	NestedIgnore      bool

	// Processing settings
	NoRecursive   bool
	MaxFileSizeMB int64

	// Output settings
	OutputFile  string
	NoStructure bool
	JSONOutput  bool
	Render      bool
	ShowSkipped bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	ConfigFile string
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Extensions: append([]string(nil), filter.DefaultExtensions...),
	}
}

// BindFlags registers every setting on fs.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&c.Extensions, "extensions", "e", c.Extensions, "Comma-separated list of file extensions to include (without dots)")
	fs.StringSliceVar(&c.ExcludePatterns, "exclude-patterns", nil, "Comma-separated list of patterns to exclude (e.g., test_,debug_)")
	fs.StringSliceVar(&c.ExcludeExtensions, "exclude-extensions", nil, "Comma-separated list of file patterns to exclude (e.g., test.py,spec.js)")
	fs.StringArrayVar(&c.IgnoreFiles, "ignore-file", nil, "Ignore-rule file to apply (repeatable; replaces the default .gitignore)")
	fs.BoolVar(&c.NoIgnore, "no-ignore", false, "Do not look for a .gitignore in the scanned directory")
	fs.BoolVar(&c.NestedIgnore, "nested-ignore", false, "Also honour .gitignore files in subdirectories")
	fs.BoolVar(&c.NoRecursive, "no-recursive", false, "Disable recursive directory scanning")
	fs.Int64Var(&c.MaxFileSizeMB, "max-size", 0, "Max file size to include in MB (0 = no limit)")
	fs.StringVarP(&c.OutputFile, "output", "o", "", "Output file path (defaults to standard output)")
	fs.BoolVar(&c.NoStructure, "no-structure", false, "Omit the repository structure section")
	fs.BoolVar(&c.JSONOutput, "json", false, "Output results in JSON format")
	fs.BoolVar(&c.Render, "render", false, "Render the markdown for the terminal when writing to one")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.StringVar(&c.ConfigFile, "config", "", "Read settings from a TOML or YAML file; flags take precedence")
}

// Finalize cleans list values and resolves terminal-dependent settings.
func (c *Config) Finalize() {
	c.Extensions = clean(c.Extensions)
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), filter.DefaultExtensions...)
	}
	c.ExcludePatterns = clean(c.ExcludePatterns)
	c.ExcludeExtensions = clean(c.ExcludeExtensions)
	c.UseColors = !c.NoColor && isTerminal(os.Stderr.Fd())
}

// RenderEnabled reports whether --render applies: only for markdown
// written to an interactive standard output.
func (c *Config) RenderEnabled() bool {
	return c.Render && !c.JSONOutput && c.OutputFile == "" && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func clean(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
