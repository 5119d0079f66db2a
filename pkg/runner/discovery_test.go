package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aloe-os/symtool/pkg/runner"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var rels []string
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("filters by extension", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{
			"main.c":    "",
			"main.h":    "",
			"util.cc":   "",
			"notes.txt": "",
			"README.md": "",
		})

		files, err := runner.Discover(context.Background(), runner.Options{
			Path:       root,
			WorkingDir: root,
			Extensions: []string{".c", ".h", ".cc"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"main.c", "main.h", "util.cc"}, relPaths(t, root, files))
	})

	t.Run("walks subdirectories", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{
			"src/a.c":        "",
			"src/deep/b.c":   "",
			"include/defs.h": "",
		})

		files, err := runner.Discover(context.Background(), runner.Options{
			Path:       root,
			WorkingDir: root,
			Extensions: []string{".c", ".h"},
		})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"include/defs.h", "src/a.c", "src/deep/b.c"},
			relPaths(t, root, files))
	})

	t.Run("skips hidden directories", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{
			".git/blob.c": "",
			"real.c":      "",
		})

		files, err := runner.Discover(context.Background(), runner.Options{
			Path:       root,
			WorkingDir: root,
			Extensions: []string{".c"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"real.c"}, relPaths(t, root, files))
	})

	t.Run("exclude globs", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{
			"keep.c":          "",
			"vendor/theirs.c": "",
		})

		files, err := runner.Discover(context.Background(), runner.Options{
			Path:         root,
			WorkingDir:   root,
			Extensions:   []string{".c"},
			ExcludeGlobs: []string{"vendor"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"keep.c"}, relPaths(t, root, files))
	})

	t.Run("single file path still filtered by extension", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{"only.c": "", "only.txt": ""})

		files, err := runner.Discover(context.Background(), runner.Options{
			Path:       filepath.Join(root, "only.c"),
			WorkingDir: root,
			Extensions: []string{".c"},
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)

		files, err = runner.Discover(context.Background(), runner.Options{
			Path:       filepath.Join(root, "only.txt"),
			WorkingDir: root,
			Extensions: []string{".c"},
		})
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root is recoverable", func(t *testing.T) {
		t.Parallel()

		var diags []string
		files, err := runner.Discover(context.Background(), runner.Options{
			Path:       filepath.Join(t.TempDir(), "nope"),
			Extensions: []string{".c"},
			Diag: func(format string, args ...any) {
				diags = append(diags, format)
			},
		})
		require.NoError(t, err)
		assert.Empty(t, files)
		assert.Len(t, diags, 1)
	})
}
