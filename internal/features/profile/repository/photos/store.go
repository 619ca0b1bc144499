package photos

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tgutils "tg-info-backend/internal/utils/telegram"
)

// Store keeps downloaded profile photos in a local directory served under urlPrefix.
type Store struct {
	dir       string
	urlPrefix string
}

// NewStore creates dir if needed.
func NewStore(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir %s: %w", dir, err)
	}
	return &Store{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes data under filename and returns its public URL. The file
// appears atomically so a concurrent reader never sees a partial photo.
func (s *Store) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.path(filename)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, ".photo-*")
	if err != nil {
		return "", fmt.Errorf("create temp photo: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write photo %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close photo %s: %w", filename, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod photo %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("store photo %s: %w", filename, err)
	}

	return s.URL(filename), nil
}

// Exists reports whether a non-empty file is stored under filename.
func (s *Store) Exists(filename string) bool {
	path, err := s.path(filename)
	if err != nil {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular() && st.Size() > 0
}

func (s *Store) URL(filename string) string {
	return tgutils.BuildPhotoURL(s.urlPrefix, filename)
}

func (s *Store) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("invalid photo filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}
