package ignore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/codemd/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverSources(t *testing.T) {
	root := t.TempDir()

	assert.Empty(t, DiscoverSources(root, nil, false), "no default file yet")

	def := filepath.Join(root, DefaultIgnoreFile)
	writeFile(t, def, "*.txt\n")
	assert.Equal(t, []string{def}, DiscoverSources(root, nil, false))
	assert.Empty(t, DiscoverSources(root, nil, true))

	explicit := []string{"/elsewhere/rules", "/more/rules"}
	assert.Equal(t, explicit, DiscoverSources(root, explicit, false))
	assert.Equal(t, explicit, DiscoverSources(root, explicit, true))
}

func TestReadSourcesSkipsUnreadable(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "first")
	second := filepath.Join(root, "second")
	writeFile(t, first, "*.txt\n# c\n")
	writeFile(t, second, "!keep.txt")

	var diag bytes.Buffer
	log := logger.New(&diag, false, false)

	lines := ReadSources([]string{first, filepath.Join(root, "missing"), second}, log)
	assert.Equal(t, []string{"*.txt", "# c", "", "!keep.txt"}, lines)
	assert.Contains(t, diag.String(), "WARN")
	assert.Contains(t, diag.String(), "missing")
	assert.Equal(t, 1, log.Warnings())
}
