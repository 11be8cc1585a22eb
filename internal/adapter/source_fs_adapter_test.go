package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/fndecorate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.go"), "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.go")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "main.go")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, child, "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	content := "package main\n" + "func main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	writeTestFile(t, path, "package main\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)

	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func TestLocalSourceFSAdapter_MkdirAllAndWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, adapter.MkdirAll(m.Path(dir)))

	path := adapter.JoinPath(dir, "out.go")
	require.NoError(t, adapter.WriteFile(path, []byte("package out\n"), 0o600))

	got, err := adapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package out\n", string(got))
	assert.Equal(t, m.Path(filepath.Join(dir, "out.go")), path)
}

func TestLocalSourceFSAdapter_Remove(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "stale.go")
	writeTestFile(t, path, "package stale\n")

	require.NoError(t, adapter.Remove(m.Path(path)))
	assert.NoFileExists(t, path)

	require.NoError(t, adapter.Remove(m.Path(path)), "removing a missing file succeeds")
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("dot selects current directory non-recursive", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.go")
		testPath := filepath.Join(root, "main_test.go")
		writeTestFile(t, mainPath, mainSource)
		writeTestFile(t, testPath, "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		nestedPath := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, nestedPath, childSource)

		chdir(t, root)

		sources, err := adapter.Get([]m.Path{"."})
		require.NoError(t, err)
		require.Len(t, sources, 1)

		assertSource(t, findSourceByOrigin(sources, mainPath), mainPath, "main")
		assert.Nil(t, findSourceByOrigin(sources, nestedPath), "Get() unexpectedly included nested file for '.'")
		assert.Nil(t, findSourceByOrigin(sources, testPath), "Get() should not include test files")
	})

	t.Run("tilde expands home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		mainPath := filepath.Join(home, "home.go")
		writeTestFile(t, mainPath, mainSource)

		sources, err := adapter.Get([]m.Path{"~"})
		require.NoError(t, err)

		assertSource(t, findSourceByOrigin(sources, mainPath), mainPath, "main")
	})

	t.Run("parent directory path resolves", func(t *testing.T) {
		root := t.TempDir()
		parentPath := filepath.Join(root, "main.go")
		writeTestFile(t, parentPath, mainSource)

		childDir := filepath.Join(root, "child")
		mustMkdir(t, childDir)
		chdir(t, childDir)

		sources, err := adapter.Get([]m.Path{"./../"})
		require.NoError(t, err)

		assertSource(t, findSourceByOrigin(sources, parentPath), parentPath, "main")
	})

	t.Run("go style recursive path includes nested", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.go")
		writeTestFile(t, mainPath, mainSource)

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		nestedPath := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, nestedPath, childSource)

		chdir(t, root)

		for _, pattern := range []m.Path{"./...", "..."} {
			sources, err := adapter.Get([]m.Path{pattern})
			require.NoError(t, err)

			assertSource(t, findSourceByOrigin(sources, mainPath), mainPath, "main")
			assertSource(t, findSourceByOrigin(sources, nestedPath), nestedPath, "sub")
		}
	})

	t.Run("recursive walk skips ignored directories", func(t *testing.T) {
		root := t.TempDir()

		for _, dir := range []string{"vendor", "testdata", ".git", "_examples"} {
			mustMkdir(t, filepath.Join(root, dir))
			writeTestFile(t, filepath.Join(root, dir, "skip.go"), childSource)
		}

		sources, err := adapter.Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("returns error for missing root", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{"/path/does/not/exist"})
		assert.Error(t, err)
	})

	t.Run("file path returns single source", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.go")
		writeTestFile(t, mainPath, mainSource)

		sources, err := adapter.Get([]m.Path{m.Path(mainPath)})
		require.NoError(t, err)
		require.Len(t, sources, 1)

		assertSource(t, &sources[0], mainPath, "main")
	})

	t.Run("test file input yields no sources", func(t *testing.T) {
		root := t.TempDir()
		testPath := filepath.Join(root, "main_test.go")
		writeTestFile(t, testPath, "package main\n")

		sources, err := adapter.Get([]m.Path{m.Path(testPath)})
		require.NoError(t, err)
		assert.Len(t, sources, 0)
	})

	t.Run("non-go files are ignored", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "go.mod"), "module example.com/x\n")

		sources, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)
		assert.Len(t, sources, 0)
	})

	t.Run("duplicate roots are de-duplicated", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.go")
		writeTestFile(t, mainPath, mainSource)

		sources, err := adapter.Get([]m.Path{m.Path(root), m.Path(root)})
		require.NoError(t, err)
		require.Len(t, sources, 1)
	})

	t.Run("files without a package clause are skipped", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "broken.go"), "func {\n")

		sources, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)
		assert.Len(t, sources, 0)
	})
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

const mainSource = `package main

//fndecorate:use trace()
func main() {}
`

const childSource = "package sub\n\nfunc Child() {}\n"

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func findSourceByOrigin(sources []m.Source, origin string) *m.Source {
	for i := range sources {
		if string(sources[i].Origin) == origin {
			return &sources[i]
		}
	}

	return nil
}

func assertSource(t *testing.T, source *m.Source, originPath string, pkg string) {
	t.Helper()

	require.NotNil(t, source, "source %s not found", originPath)
	assert.Equal(t, m.Path(originPath), source.Origin)
	assert.Equal(t, pkg, source.Package)
}

