package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local stores objects on disk under root; they are served from publicURL.
type Local struct {
	root      string
	publicURL string
}

func NewLocal(root, publicURL string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("storage.NewLocal: root is not set")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage.NewLocal: %w", err)
	}
	return &Local{root: root, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (l *Local) Root() string { return l.root }

func (l *Local) Put(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := path.Clean("/" + key)[1:]
	if clean == "" {
		return "", fmt.Errorf("storage.Local.Put: empty key")
	}
	dst := filepath.Join(l.root, filepath.FromSlash(clean))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("storage.Local.Put: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage.Local.Put: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return "", fmt.Errorf("storage.Local.Put: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage.Local.Put: %w", err)
	}

	return l.publicURL + "/" + clean, nil
}
