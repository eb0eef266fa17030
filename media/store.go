package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/viprogramm/audio11eleven/logger"
)

// Store owns the transient upload directory. Each saved file is named by a
// millisecond timestamp plus a short unique suffix, so concurrent uploads in
// the same millisecond cannot collide.
type Store struct {
	dir string
	log *logger.Logger
}

// NewStore creates the upload directory if it does not exist yet.
func NewStore(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{
		dir: dir,
		log: log.WithComponent("media-store"),
	}, nil
}

// Dir returns the upload directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the content of r to a new transient file, keeping the original
// name's extension. It returns the full path of the created file.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	s.log.Debug("temp file saved", map[string]interface{}{
		logger.FieldFilename: name,
	})
	return path, nil
}

// Remove deletes a transient file. Failure to delete is logged as a warning
// and never propagated: a leaked temp file must not fail the request that
// already has a result.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil {
		s.log.Warn("failed to remove temp file", map[string]interface{}{
			logger.FieldFilename: path,
			logger.FieldError:    err.Error(),
		})
	}
}
