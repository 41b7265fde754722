package service

import "io"

type MediaStorage interface {
	// Save stores a file's content under a name derived from the
	// attachment id and the original filename's extension.
	// It returns the stored filename.
	Save(fileData io.Reader, attachmentId, originalFilename string) (string, error)

	// Read opens a stored file for reading given its filename.
	Read(filename string) (io.ReadCloser, error)

	// Delete removes a single stored file. Missing files are not an error.
	Delete(filename string) error
}
