package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/codemd/internal/errs"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration. Unset keys leave the flag defaults
// alone.
type File struct {
	Extensions        []string `toml:"extensions" yaml:"extensions"`
	ExcludePatterns   []string `toml:"exclude_patterns" yaml:"exclude_patterns"`
	ExcludeExtensions []string `toml:"exclude_extensions" yaml:"exclude_extensions"`
	IgnoreFiles       []string `toml:"ignore_files" yaml:"ignore_files"`
	NoIgnore          *bool    `toml:"no_ignore" yaml:"no_ignore"`
	NestedIgnore      *bool    `toml:"nested_ignore" yaml:"nested_ignore"`
	NoRecursive       *bool    `toml:"no_recursive" yaml:"no_recursive"`
	MaxSizeMB         *int64   `toml:"max_size" yaml:"max_size"`
	Output            *string  `toml:"output" yaml:"output"`
	NoStructure       *bool    `toml:"no_structure" yaml:"no_structure"`
	JSON              *bool    `toml:"json" yaml:"json"`
	LogLevel          *string  `toml:"log_level" yaml:"log_level"`
}

// LoadFile parses path as TOML (.toml) or YAML (.yaml, .yml).
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrConfig, path, "could not read config file")
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, errs.New(errs.ErrConfig, path, "unsupported config format %q", ext)
	}
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrConfig, path, "could not parse config file")
	}
	return &f, nil
}

// Apply copies the file's values into c for every setting whose flag was
// not given explicitly.
func (c *Config) Apply(f *File, changed func(flag string) bool) {
	if f == nil {
		return
	}
	setList := func(flag string, dst *[]string, src []string) {
		if src != nil && !changed(flag) {
			*dst = append([]string(nil), src...)
		}
	}
	setBool := func(flag string, dst *bool, src *bool) {
		if src != nil && !changed(flag) {
			*dst = *src
		}
	}

	setList("extensions", &c.Extensions, f.Extensions)
	setList("exclude-patterns", &c.ExcludePatterns, f.ExcludePatterns)
	setList("exclude-extensions", &c.ExcludeExtensions, f.ExcludeExtensions)
	setList("ignore-file", &c.IgnoreFiles, f.IgnoreFiles)
	setBool("no-ignore", &c.NoIgnore, f.NoIgnore)
	setBool("nested-ignore", &c.NestedIgnore, f.NestedIgnore)
	setBool("no-recursive", &c.NoRecursive, f.NoRecursive)
	setBool("no-structure", &c.NoStructure, f.NoStructure)
	setBool("json", &c.JSONOutput, f.JSON)
	if f.MaxSizeMB != nil && !changed("max-size") {
		c.MaxFileSizeMB = *f.MaxSizeMB
	}
	if f.Output != nil && !changed("output") {
		c.OutputFile = *f.Output
	}
	if f.LogLevel != nil && !changed("log-level") {
		c.LogLevel = *f.LogLevel
	}
}
