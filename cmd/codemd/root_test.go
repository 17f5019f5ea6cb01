package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/codemd/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandScans(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("x=1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.go"), []byte("package b"), 0o644))

	stdout, _, err := execute(t, root, "--no-color", "-e", "go")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# b.go\n```go\npackage b\n```")
	assert.NotContains(t, stdout, "a.py")
}

func TestRootCommandRequiresDirectory(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}

func TestRootCommandMissingDirectory(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrConfig))
}

func TestRootCommandConfigFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.rs"), []byte("fn main() {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.py"), []byte("pass"), 0o644))
	cfgFile := filepath.Join(t.TempDir(), "codemd.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("extensions = [\"rs\"]\nno_structure = true\n"), 0o644))

	stdout, _, err := execute(t, root, "--config", cfgFile, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "# a.rs\n```rs\nfn main() {}\n```\n\n", stdout)
}

func TestRootCommandBadConfigFile(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "--config", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrConfig))
}
