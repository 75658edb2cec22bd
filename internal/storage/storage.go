// Package storage writes uploaded files to the configured backend and
// returns the URL they are served from.
package storage

import (
	"context"
	"fmt"
	"io"

	"jiffy-backoffice-api-server/config"
)

const (
	ImagesPrefix   = "uploadedImages/"
	ReceiptsPrefix = "uploadedRecipt/"
)

// Storage puts an object under key and returns its public URL.
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// New selects the backend named by cfg.Storage.Driver.
func New(ctx context.Context, cfg config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case "", "local":
		return NewLocal(cfg.Storage.LocalRoot, cfg.Storage.PublicURL)
	case "s3":
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("storage.New: unknown driver %q", cfg.Storage.Driver)
	}
}
