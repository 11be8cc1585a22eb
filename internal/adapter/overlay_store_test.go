package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/mouse-blink/fndecorate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadowName(t *testing.T) {
	a := ShadowName("/project/a/main.go")
	b := ShadowName("/project/b/main.go")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "main_"), a)
	assert.True(t, strings.HasSuffix(a, ".go"), a)
	assert.Len(t, a, len("main_")+12+len(".go"))
	assert.Equal(t, a, ShadowName("/project/a/main.go"))
}

func TestOverlayStore_SaveShadowAndOverlay(t *testing.T) {
	store := NewOverlayStore(NewLocalSourceFSAdapter())
	cache := filepath.Join(t.TempDir(), "cache")

	source := m.Source{Origin: "/project/main.go"}
	shadow, err := store.SaveShadow(m.Path(cache), source, []byte("package main\n"))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(string(shadow)))
	assert.Equal(t, filepath.Join(cache, ShadowName(source.Origin)), string(shadow))

	content, err := os.ReadFile(string(shadow))
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(content))

	overlay := m.Overlay{Replace: map[string]string{string(source.Origin): string(shadow)}}
	path, err := store.SaveOverlay(m.Path(cache), overlay)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, OverlayFile), string(path))

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, string(shadow), decoded["Replace"]["/project/main.go"])

	loaded, err := store.LoadOverlay(path)
	require.NoError(t, err)
	assert.Equal(t, overlay, loaded)
}

func TestOverlayStore_EmptyOverlayHasReplaceObject(t *testing.T) {
	store := NewOverlayStore(NewLocalSourceFSAdapter())

	path, err := store.SaveOverlay(m.Path(t.TempDir()), m.Overlay{})
	require.NoError(t, err)

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Replace": {}}`, string(raw))
}

func TestOverlayStore_Errors(t *testing.T) {
	store := NewOverlayStore(NewLocalSourceFSAdapter())

	_, err := store.SaveShadow("", m.Source{Origin: "a.go"}, nil)
	assert.Error(t, err)

	_, err = store.LoadOverlay(m.Path(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = store.LoadOverlay(m.Path(bad))
	assert.ErrorContains(t, err, "decode overlay")
}

func TestOverlayStore_Prune(t *testing.T) {
	store := NewOverlayStore(NewLocalSourceFSAdapter())
	cache := t.TempDir()

	kept, err := store.SaveShadow(m.Path(cache), m.Source{Origin: "/project/a.go"}, []byte("package a\n"))
	require.NoError(t, err)
	stale, err := store.SaveShadow(m.Path(cache), m.Source{Origin: "/project/b.go"}, []byte("package b\n"))
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "other.go")
	require.NoError(t, os.WriteFile(outside, []byte("package other\n"), 0o600))

	_, err = store.SaveOverlay(m.Path(cache), m.Overlay{Replace: map[string]string{
		"/project/a.go":     string(kept),
		"/project/b.go":     string(stale),
		"/project/other.go": outside,
	}})
	require.NoError(t, err)

	next := m.Overlay{Replace: map[string]string{"/project/a.go": string(kept)}}
	require.NoError(t, store.Prune(m.Path(cache), next))

	assert.FileExists(t, string(kept))
	assert.NoFileExists(t, string(stale))
	assert.FileExists(t, outside, "files outside the cache are left alone")
}

func TestOverlayStore_PruneWithoutOverlay(t *testing.T) {
	store := NewOverlayStore(NewLocalSourceFSAdapter())

	require.NoError(t, store.Prune(m.Path(t.TempDir()), m.Overlay{}))

	bad := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bad, OverlayFile), []byte("{"), 0o600))
	require.NoError(t, store.Prune(m.Path(bad), m.Overlay{}))

	assert.Error(t, store.Prune("", m.Overlay{}))
}
