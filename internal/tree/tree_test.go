package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/codemd/internal/filter"
	"github.com/bethropolis/codemd/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func render(t *testing.T, root string, opts ...filter.Option) string {
	t.Helper()
	p, err := filter.New(root, opts...)
	require.NoError(t, err)
	return New(p).Render(root)
}

func TestRenderSortedAndIndented(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b.py", "a.py", "pkg/z.js", "pkg/inner/m.c", "notes.txt")

	want := strings.Join([]string{
		"* a.py",
		"* b.py",
		"* **pkg/**",
		"  * **inner/**",
		"    * m.c",
		"  * z.js",
	}, "\n")
	assert.Equal(t, want, render(t, root))
}

func TestRenderPrunesEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"empty/",
		"outer/inner/deeper/",
		"outer/inner/readme.md",
		"docs/guide.txt",
		"src/main.py",
	)

	out := render(t, root)
	assert.Equal(t, "* **src/**\n  * main.py", out)
	assert.NotContains(t, out, "outer")
	assert.NotContains(t, out, "empty")
	assert.NotContains(t, out, "docs")
}

func TestRenderSkipsHiddenEntries(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".hidden.py", ".config/app.py", "visible.py")
	assert.Equal(t, "* visible.py", render(t, root))
}

func TestRenderEscapesMarkdown(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "my_pkg/__init__.py", "star*name.py")

	want := strings.Join([]string{
		`* **my\_pkg/**`,
		`  * \_\_init\_\_.py`,
		`* star\*name.py`,
	}, "\n")
	assert.Equal(t, want, render(t, root))
}

func TestRenderHonoursIgnoreRules(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "sub/c.py", "a.py", "keep/important.py", "keep/other.py")

	out := render(t, root, filter.WithMatcher(ignore.Compile([]string{"sub/", "*.py", "!important.py"})))
	assert.Equal(t, "* **keep/**\n  * important.py", out)
}

func TestRenderEmptyResult(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "README.md")
	assert.Equal(t, "", render(t, root))
	assert.Equal(t, "", render(t, filepath.Join(root, "missing")))
}

func TestRenderUnlistableDirectoryIsEmpty(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := t.TempDir()
	touch(t, root, "locked/a.py", "open/b.py")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	assert.Equal(t, "* **open/**\n  * b.py", render(t, root))
}

func TestEscapeName(t *testing.T) {
	assert.Equal(t, `a\_b\*c`, EscapeName("a_b*c"))
	assert.Equal(t, "plain.go", EscapeName("plain.go"))
}
