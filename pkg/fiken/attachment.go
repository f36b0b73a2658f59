package fiken

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
)

// AttachmentFile is a document to upload as a multipart "file" part.
type AttachmentFile struct {
	Filename    string
	ContentType string
	Data        []byte
	// Fields are sent as extra form fields, e.g. "comment" or "attachToSale".
	Fields map[string]string
}

// NewAttachmentFromFile reads the file at path. The content type is guessed
// from the extension.
func NewAttachmentFromFile(path string) (*AttachmentFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	filename := filepath.Base(path)

	return &AttachmentFile{
		Filename:    filename,
		ContentType: GuessContentType(filename),
		Data:        data,
	}, nil
}

// NewAttachmentFromReader reads r fully. An empty filename becomes
// "attachment".
func NewAttachmentFromReader(filename string, r io.Reader) (*AttachmentFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	if filename == "" {
		filename = constants.DefaultAttachmentName
	}

	return &AttachmentFile{
		Filename:    filename,
		ContentType: GuessContentType(filename),
		Data:        data,
	}, nil
}

// WithField sets an extra form field.
func (a *AttachmentFile) WithField(key, value string) *AttachmentFile {
	if a.Fields == nil {
		a.Fields = make(map[string]string)
	}

	a.Fields[key] = value

	return a
}

// GuessContentType maps a filename extension to a MIME type, falling back to
// application/octet-stream.
func GuessContentType(filename string) string {
	if contentType := mime.TypeByExtension(filepath.Ext(filename)); contentType != "" {
		return contentType
	}

	return constants.DefaultContentType
}
