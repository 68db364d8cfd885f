package imagestore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/storedeskapps/barcode-register/internal/httperr"
)

// Store owns the image blob lifecycle. Save returns the relative content
// path that is persisted on the scan/record row; URL turns that path into
// something the listing page can link to.
type Store interface {
	Save(ctx context.Context, data []byte, ext string) (path string, err error)

	// Remove deletes the blob at path. A missing blob is not an error.
	Remove(ctx context.Context, path string) error

	URL(path string) string
}

// IOError marks storage I/O faults (disk full, permission denied, S3
// unreachable) so handlers can report them distinctly from business errors.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("imagestore: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// ===============================
// Data URL decoding
// ===============================

const dataURLPrefix = "data:image/"

// ParseDataURL decodes a `data:image/<fmt>;base64,<payload>` URL as produced
// by canvas.toDataURL on the client. The decoded bytes are returned untouched.
func ParseDataURL(s string) (data []byte, ext string, err error) {
	if !strings.HasPrefix(s, dataURLPrefix) {
		return nil, "", httperr.ErrBusiness("invalid_image_payload")
	}

	rest := s[len(dataURLPrefix):]

	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, "", httperr.ErrBusiness("invalid_image_payload")
	}

	ext = extensionFor(rest[:sep])

	data, decErr := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if decErr != nil || len(data) == 0 {
		return nil, "", httperr.ErrBusiness("invalid_image_payload")
	}

	return data, ext, nil
}

func extensionFor(subtype string) string {
	switch strings.ToLower(subtype) {
	case "jpeg", "jpg":
		return "jpg"
	case "png":
		return "png"
	case "webp":
		return "webp"
	case "gif":
		return "gif"
	default:
		return "jpg"
	}
}

func contentTypeFor(ext string) string {
	switch ext {
	case "jpg":
		return "image/jpeg"
	default:
		return "image/" + ext
	}
}
