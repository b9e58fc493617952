package upload

import (
	"context"
	"io"
)

// Repository defines storage for user-uploaded images. Stored files are
// served statically under /uploads, so implementations must produce names
// safe to embed in a URL path.
type Repository interface {
	// Save stores the image bytes under a generated unique name derived
	// from the original filename's extension, and returns that name.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Delete removes a stored image. Deleting an absent name is an error.
	Delete(ctx context.Context, storedName string) error
}
