package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/codemd/internal/config"
	"github.com/bethropolis/codemd/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func run(t *testing.T, cfg *config.Config) (string, string, error) {
	t.Helper()
	cfg.Finalize()
	var stdout, stderr bytes.Buffer
	err := New(cfg, &stdout, &stderr).Run()
	return stdout.String(), stderr.String(), err
}

func TestRunWritesDocumentToStdout(t *testing.T) {
	root := t.TempDir()
	write(t, root, map[string]string{
		"a.py":       "x=1",
		"b.txt":      "nope",
		".gitignore": "*.txt\n",
	})

	cfg := config.New()
	cfg.RootDir = root
	cfg.Extensions = []string{"py"}
	stdout, stderr, err := run(t, cfg)
	require.NoError(t, err)

	want := strings.Join([]string{
		"# Repository Structure",
		"* a.py",
		"",
		"# a.py",
		"```py",
		"x=1",
		"```",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, stdout)
	assert.Contains(t, stderr, "Scanning directory")
	assert.NotContains(t, stdout, "INFO")
}

func TestRunWritesOutputFile(t *testing.T) {
	root := t.TempDir()
	write(t, root, map[string]string{"main.c": "int main;"})
	out := filepath.Join(t.TempDir(), "bundle.md")

	cfg := config.New()
	cfg.RootDir = root
	cfg.OutputFile = out
	cfg.NoStructure = true
	stdout, stderr, err := run(t, cfg)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# main.c\n```c\nint main;\n```\n", string(data))
	assert.Contains(t, stderr, "Output written to: "+out)
	assert.Contains(t, stderr, "Total characters: 28")
}

func TestRunMissingDirectory(t *testing.T) {
	cfg := config.New()
	cfg.RootDir = filepath.Join(t.TempDir(), "missing")
	stdout, _, err := run(t, cfg)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrConfig))
	assert.Empty(t, stdout)
}

func TestRunUnwritableOutput(t *testing.T) {
	root := t.TempDir()
	cfg := config.New()
	cfg.RootDir = root
	cfg.OutputFile = filepath.Join(root, "no", "such", "dir", "out.md")
	_, _, err := run(t, cfg)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrOutput))
}

func TestRunWarningsDoNotFail(t *testing.T) {
	root := t.TempDir()
	write(t, root, map[string]string{"ok.py": "1", "bad.py": string([]byte{0xff})})

	cfg := config.New()
	cfg.RootDir = root
	cfg.IgnoreFiles = []string{filepath.Join(root, "absent.ignore")}
	cfg.Quiet = true
	cfg.ShowSkipped = true
	stdout, stderr, err := run(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, stdout, "# ok.py")
	assert.NotContains(t, stdout, "bad.py")
	assert.Contains(t, stderr, "WARN")
	assert.NotContains(t, stderr, "INFO")
	assert.Contains(t, stderr, "Skipped FILE: bad.py")
}

func TestRunJSON(t *testing.T) {
	root := t.TempDir()
	write(t, root, map[string]string{"a.js": "let a;"})

	cfg := config.New()
	cfg.RootDir = root
	cfg.JSONOutput = true
	stdout, _, err := run(t, cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"path": "a.js"`)
}
