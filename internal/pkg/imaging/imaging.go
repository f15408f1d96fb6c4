// Package imaging validates admin image uploads and converts them into
// self-contained data: references embeddable directly as an image source.
// It is pass-through only: no resizing, compression, or re-encoding.
package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxBytes caps uploads at 5 MiB.
const MaxBytes = 5 * 1024 * 1024

var (
	// ErrUnsupportedType: the declared content type is not an allowed image type.
	ErrUnsupportedType = errors.New("please select a valid image file (JPEG, PNG, or WebP)")
	// ErrTooLarge: the file exceeds MaxBytes.
	ErrTooLarge = errors.New("image size should be less than 5MB")
	// ErrRead: reading the file content failed; callers must keep the previous
	// image reference unchanged.
	ErrRead = errors.New("failed to read image file")
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// Validate checks the declared content type before the size; both limits apply
// to every upload.
func Validate(declaredType string, size int64) error {
	mediaType := declaredType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if _, ok := allowedTypes[mediaType]; !ok {
		return fmt.Errorf("%w: got %q", ErrUnsupportedType, declaredType)
	}
	if size > MaxBytes {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	return nil
}

// ConvertToEmbedded reads the full file content and returns a
// "data:<mime>;base64,<payload>" string. The mime prefix comes from content
// sniffing, falling back to the declared type when sniffing is inconclusive.
func ConvertToEmbedded(r io.Reader, declaredType string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}

	mime := mimetype.Detect(content).String()
	if strings.HasPrefix(mime, "application/octet-stream") && declaredType != "" {
		mime = declaredType
	}
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}
