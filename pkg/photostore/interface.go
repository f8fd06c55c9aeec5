package photostore

import (
	"context"
	"io"
)

//go:generate mockery --name IPhotoStore
type IPhotoStore interface {
	// Save writes content under a freshly generated filename that keeps the
	// extension of originalFilename, and returns that filename.
	Save(ctx context.Context, originalFilename string, content io.Reader) (string, error)
	// Read returns the bytes of a previously saved file, or ErrNotFound.
	Read(ctx context.Context, filename string) ([]byte, error)
}
