package importer

import (
	"strings"

	"github.com/rotisserie/eris"
)

// FileMetadata describes an uploaded file before its content is read.
type FileMetadata struct {
	Name string
	MIME string // empty when the transport provides none
	Size int64
}

// CheckFileMetadata vets a file by name, type and declared size without
// touching its content. Only .json files (or application/json payloads)
// are accepted, path-traversal names are rejected outright, and the
// declared size must fit under the payload ceiling.
func (imp *Importer) CheckFileMetadata(meta FileMetadata) error {
	if strings.Contains(meta.Name, "../") || strings.Contains(meta.Name, `..\`) {
		return eris.Wrapf(ErrInvalidFileMetadata, "filename %q contains path traversal", meta.Name)
	}

	if meta.MIME != "application/json" && !strings.HasSuffix(strings.ToLower(meta.Name), ".json") {
		return eris.Wrapf(ErrInvalidFileMetadata, "only JSON files are accepted, got %q", meta.Name)
	}

	if meta.Size > imp.maxBytes {
		return eris.Wrapf(ErrInvalidFileMetadata, "declared size %d exceeds limit %d", meta.Size, imp.maxBytes)
	}

	return nil
}
