package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idears-dev/idears/internal/service"
)

// Storage keeps attachment binaries in a flat upload directory,
// one file per attachment named <attachment-id><original-extension>.
type Storage struct {
	rootPath string
}

// Ensure Storage struct implements the interface at compile time.
var _ service.MediaStorage = (*Storage)(nil)

func New(rootPath string) (*Storage, error) {
	// Use filepath.Clean to prevent path traversal issues like "uploads/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", p, err)
	}

	return &Storage{rootPath: p}, nil
}

// Root returns the upload directory path, for the static file server.
func (s *Storage) Root() string {
	return s.rootPath
}

// Save writes an uploaded file into the upload directory and returns
// the stored filename. The name is derived from the attachment id plus
// the extension of the original filename, so client-supplied names
// never reach the filesystem.
func (s *Storage) Save(fileData io.Reader, attachmentId, originalFilename string) (string, error) {
	ext := filepath.Ext(filepath.Base(originalFilename))
	filename := attachmentId + ext
	fullPath := filepath.Join(s.rootPath, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, fileData); err != nil {
		os.Remove(fullPath) // Best effort, ignore error here.
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return filename, nil
}

// Read opens a stored file for reading.
func (s *Storage) Read(filename string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.rootPath, filepath.Base(filename))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("attachment file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a stored file. A file that is already gone is not an
// error; the metadata row is the source of truth.
func (s *Storage) Delete(filename string) error {
	fullPath := filepath.Join(s.rootPath, filepath.Base(filename))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
