package scenariostore

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores one file per key under a directory. Keys are
// URL-safe base64 encoded in the file name so arbitrary scenario names
// stay filesystem-safe.
type FileBackend struct {
	dir string
}

const fileExt = ".kv"

func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		dir = filepath.Join(".cache", "scenarios")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	name := base64.RawURLEncoding.EncodeToString([]byte(key)) + fileExt
	return filepath.Join(b.dir, name)
}

func (b *FileBackend) Get(key string) (string, bool, error) {
	raw, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}

func (b *FileBackend) Set(key, value string) error {
	return os.WriteFile(b.path(key), []byte(value), 0o644)
}

func (b *FileBackend) Delete(key string) error {
	err := os.Remove(b.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (b *FileBackend) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(e.Name(), fileExt))
		if err != nil {
			continue // foreign file in the store dir
		}
		key := string(decoded)
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	return out, nil
}
