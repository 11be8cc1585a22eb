package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/fndecorate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	loader := NewConfigLoader()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	writeTestFile(t, path, `parallel: 4
exclude:
  - _gen\.go$
  - ^vendor/
cache: .cache/fndecorate
verbose: true
`)

	cfg, err := loader.Load(m.Path(path), true)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Parallel: 4,
		Exclude:  []string{`_gen\.go$`, "^vendor/"},
		Cache:    ".cache/fndecorate",
		Verbose:  true,
	}, cfg)
}

func TestConfigLoader_MissingFile(t *testing.T) {
	loader := NewConfigLoader()
	missing := m.Path(filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := loader.Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	_, err = loader.Load(missing, true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigLoader_Invalid(t *testing.T) {
	loader := NewConfigLoader()
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	writeTestFile(t, broken, "parallel: [\n")

	_, err := loader.Load(m.Path(broken), true)
	assert.ErrorContains(t, err, "parse config")

	negative := filepath.Join(dir, "negative.yaml")
	writeTestFile(t, negative, "parallel: -1\n")

	_, err = loader.Load(m.Path(negative), true)
	assert.ErrorContains(t, err, "must not be negative")
}
