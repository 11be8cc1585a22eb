package adapter

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/fndecorate/internal/model"
)

// OverlayFile is the name of the overlay document inside the cache directory.
const OverlayFile = "overlay.json"

// OverlayStore persists transformed sources and the overlay that points the
// go command at them.
type OverlayStore interface {
	// SaveShadow writes content as the shadow of source and returns its absolute path.
	SaveShadow(cache m.Path, source m.Source, content []byte) (m.Path, error)
	// SaveOverlay writes overlay into cache and returns the absolute path of the document.
	SaveOverlay(cache m.Path, overlay m.Overlay) (m.Path, error)
	// LoadOverlay reads an overlay document.
	LoadOverlay(path m.Path) (m.Overlay, error)
	// Prune deletes the shadows of the cache's current overlay that keep no
	// longer references.
	Prune(cache m.Path, keep m.Overlay) error
}

type overlayStore struct {
	fs SourceFSAdapter
}

// NewOverlayStore constructs an OverlayStore that writes through fs.
func NewOverlayStore(fsAdapter SourceFSAdapter) OverlayStore {
	return &overlayStore{fs: fsAdapter}
}

func (s *overlayStore) SaveShadow(cache m.Path, source m.Source, content []byte) (m.Path, error) {
	dir, err := s.ensureCache(cache)
	if err != nil {
		return "", err
	}

	path := s.fs.JoinPath(dir, ShadowName(source.Origin))
	if err := s.fs.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write shadow %s: %w", path, err)
	}

	return path, nil
}

func (s *overlayStore) SaveOverlay(cache m.Path, overlay m.Overlay) (m.Path, error) {
	dir, err := s.ensureCache(cache)
	if err != nil {
		return "", err
	}

	if overlay.Replace == nil {
		overlay.Replace = map[string]string{}
	}

	data, err := json.MarshalIndent(overlay, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode overlay: %w", err)
	}

	path := s.fs.JoinPath(dir, OverlayFile)
	if err := s.fs.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return "", fmt.Errorf("write overlay %s: %w", path, err)
	}

	return path, nil
}

func (s *overlayStore) LoadOverlay(path m.Path) (m.Overlay, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Overlay{}, err
	}

	var overlay m.Overlay
	if err := json.Unmarshal(data, &overlay); err != nil {
		return m.Overlay{}, fmt.Errorf("decode overlay %s: %w", path, err)
	}

	return overlay, nil
}

func (s *overlayStore) Prune(cache m.Path, keep m.Overlay) error {
	if cache == "" {
		return fmt.Errorf("cache directory is empty")
	}

	dir, err := filepath.Abs(string(cache))
	if err != nil {
		return err
	}

	previous, err := s.LoadOverlay(s.fs.JoinPath(dir, OverlayFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		slog.Warn("ignoring unreadable overlay", "cache", dir, "error", err)

		return nil
	}

	kept := make(map[string]struct{}, len(keep.Replace))
	for _, shadow := range keep.Replace {
		kept[shadow] = struct{}{}
	}

	for origin, shadow := range previous.Replace {
		if _, ok := kept[shadow]; ok {
			continue
		}

		// Only files inside the cache belong to us.
		if filepath.Dir(shadow) != dir {
			continue
		}

		if err := s.fs.Remove(m.Path(shadow)); err != nil {
			return fmt.Errorf("remove stale shadow %s: %w", shadow, err)
		}

		slog.Debug("removed stale shadow", "origin", origin, "path", shadow)
	}

	return nil
}

// ShadowName derives a collision-free file name for the shadow of origin:
// the original base name plus a short hash of the full path.
func ShadowName(origin m.Path) string {
	sum := sha256.Sum256([]byte(origin))
	base := strings.TrimSuffix(filepath.Base(string(origin)), ".go")

	return fmt.Sprintf("%s_%x.go", base, sum[:6])
}

func (s *overlayStore) ensureCache(cache m.Path) (string, error) {
	if cache == "" {
		return "", fmt.Errorf("cache directory is empty")
	}

	dir, err := filepath.Abs(string(cache))
	if err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(m.Path(dir)); err != nil {
		return "", fmt.Errorf("create cache %s: %w", dir, err)
	}

	return dir, nil
}
