package services

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalImageStore writes uploaded images under a media root, naming
// each file with a fresh uuid so uploads never collide or overwrite.
type LocalImageStore struct {
	Root string
}

func NewLocalImageStore(root string) *LocalImageStore {
	return &LocalImageStore{Root: root}
}

func (s *LocalImageStore) Save(ctx context.Context, filename string, src io.Reader) (string, error) {
	key := filepath.Join("uploads", "recipe", uuid.NewString()+filepath.Ext(filename))
	path := filepath.Join(s.Root, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return key, nil
}
