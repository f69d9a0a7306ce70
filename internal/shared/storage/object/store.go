package object

import (
	"context"
	"io"
)

// Store defines the contract for persisting and retrieving report artifacts.
// The file name is the artifact's identity; there is no other key.
type Store interface {
	Save(ctx context.Context, fileName string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, fileName string) (io.ReadCloser, error)
}
