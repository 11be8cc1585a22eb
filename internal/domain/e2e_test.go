package domain_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/fndecorate/internal/adapter"
	"github.com/mouse-blink/fndecorate/internal/controller"
	"github.com/mouse-blink/fndecorate/internal/domain"
	m "github.com/mouse-blink/fndecorate/internal/model"
)

var fixtures = []string{"basic", "selection", "async", "override", "stacked", "generics"}

func fixtureDir(t *testing.T, name string) string {
	t.Helper()

	dir, err := filepath.Abs(filepath.Join("..", "..", "examples", name))
	require.NoError(t, err)

	return dir
}

func newRealWorkflow(out *bytes.Buffer) domain.Workflow {
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	fs := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(
		fs,
		adapter.NewOverlayStore(fs),
		controller.NewSimpleUI(cmd),
		domain.NewTransformer(adapter.NewLocalGoFileAdapter()),
	)
}

func goTest(t *testing.T, dir string, args ...string) ([]byte, error) {
	t.Helper()

	cmd := exec.Command("go", append([]string{"test", "-count=1"}, args...)...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOWORK=off", "GOFLAGS=")

	return cmd.CombinedOutput()
}

func requireGo(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not on PATH")
	}
}

func TestEndToEnd_FixturesPassWithOverlay(t *testing.T) {
	requireGo(t)

	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			dir := fixtureDir(t, name)
			cache := t.TempDir()

			var out bytes.Buffer
			err := newRealWorkflow(&out).Generate(domain.GenerateArgs{
				ListArgs: domain.ListArgs{Paths: []m.Path{m.Path(dir + "/...")}, Threads: 2},
				Cache:    m.Path(cache),
			})
			require.NoError(t, err)

			overlayPath := filepath.Join(cache, adapter.OverlayFile)
			overlay, err := adapter.NewOverlayStore(adapter.NewLocalSourceFSAdapter()).LoadOverlay(m.Path(overlayPath))
			require.NoError(t, err)
			assert.Contains(t, overlay.Replace, filepath.Join(dir, "main.go"))
			assert.Contains(t, out.String(), "overlay: "+overlayPath)

			output, err := goTest(t, dir, "-overlay="+overlayPath, "./...")
			require.NoError(t, err, string(output))
		})
	}
}

func TestEndToEnd_FixturesFailWithoutOverlay(t *testing.T) {
	requireGo(t)

	output, err := goTest(t, fixtureDir(t, "basic"), "./...")
	require.Error(t, err, string(output))
}

func TestEndToEnd_ListWritesNothing(t *testing.T) {
	dir := fixtureDir(t, "selection")

	var out bytes.Buffer
	err := newRealWorkflow(&out).List(domain.ListArgs{Paths: []m.Path{m.Path(dir)}})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "concatHidden")
	assert.Contains(t, out.String(), "(*MyStruct).Concat")
	assert.NoDirExists(t, filepath.Join(dir, domain.DefaultCache))
}

func TestEndToEnd_Emit(t *testing.T) {
	dir := fixtureDir(t, "basic")

	var out bytes.Buffer
	err := newRealWorkflow(&out).Emit(domain.EmitArgs{Path: m.Path(filepath.Join(dir, "main.go"))})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "func double_fn_decorator_original(")
	assert.NotContains(t, out.String(), "//fndecorate:use")
}

func TestEndToEnd_GenerateRemovesStaleShadows(t *testing.T) {
	dir := fixtureDir(t, "basic")
	cache := t.TempDir()

	stale := filepath.Join(cache, "gone_000000000000.go")
	require.NoError(t, os.WriteFile(stale, []byte("package main\n"), 0o600))

	store := adapter.NewOverlayStore(adapter.NewLocalSourceFSAdapter())
	_, err := store.SaveOverlay(m.Path(cache), m.Overlay{Replace: map[string]string{filepath.Join(dir, "gone.go"): stale}})
	require.NoError(t, err)

	var out bytes.Buffer
	err = newRealWorkflow(&out).Generate(domain.GenerateArgs{
		ListArgs: domain.ListArgs{Paths: []m.Path{m.Path(dir)}},
		Cache:    m.Path(cache),
	})
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(cache, adapter.ShadowName(m.Path(filepath.Join(dir, "main.go")))))
}
