package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Joako199002/proyecto-alzarea/pkg/metrics"
)

// DiskRepository stores uploads as files in a single directory.
type DiskRepository struct {
	dir string
	reg *metrics.Registry
}

// NewDiskRepository creates the upload directory if needed.
func NewDiskRepository(dir string, reg *metrics.Registry) (*DiskRepository, error) {
	if dir == "" {
		return nil, errors.New("empty upload directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskRepository{dir: dir, reg: reg}, nil
}

// Save writes the image under "image-<uuid><ext>". Only the extension of
// the original name is kept; the rest is client-controlled and discarded.
func (r *DiskRepository) Save(ctx context.Context, originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	storedName := "image-" + uuid.NewString() + ext

	f, err := os.Create(filepath.Join(r.dir, storedName))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	written, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(r.dir, storedName))
		return "", fmt.Errorf("write upload file: %w", err)
	}

	log.Ctx(ctx).Info().Str("file", storedName).Int64("bytes", written).Msg("image upload saved")
	if r.reg != nil {
		r.reg.Inc(ctx, "uploads_saved_total", nil, 1)
		r.reg.Inc(ctx, "uploads_bytes_total", nil, written)
	}
	return storedName, nil
}

// Delete removes a stored upload.
func (r *DiskRepository) Delete(ctx context.Context, storedName string) error {
	// Reject anything that could escape the upload directory.
	if storedName != filepath.Base(storedName) {
		return errors.New("invalid stored name")
	}
	if err := os.Remove(filepath.Join(r.dir, storedName)); err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	log.Ctx(ctx).Info().Str("file", storedName).Msg("image upload deleted")
	return nil
}
