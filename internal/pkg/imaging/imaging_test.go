package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		declaredType string
		size         int64
		wantErr      error
	}{
		{
			name:         "4MiB jpeg accepted",
			declaredType: "image/jpeg",
			size:         4 * 1024 * 1024,
			wantErr:      nil,
		},
		{
			name:         "png accepted",
			declaredType: "image/png",
			size:         1024,
			wantErr:      nil,
		},
		{
			name:         "webp accepted",
			declaredType: "image/webp",
			size:         1024,
			wantErr:      nil,
		},
		{
			name:         "content type with charset parameter",
			declaredType: "image/jpeg; charset=binary",
			size:         1024,
			wantErr:      nil,
		},
		{
			name:         "6MiB jpeg rejected for size",
			declaredType: "image/jpeg",
			size:         6 * 1024 * 1024,
			wantErr:      ErrTooLarge,
		},
		{
			name:         "text file rejected regardless of size",
			declaredType: "text/plain",
			size:         10,
			wantErr:      ErrUnsupportedType,
		},
		{
			name:         "oversized text file still rejected for type first",
			declaredType: "text/plain",
			size:         6 * 1024 * 1024,
			wantErr:      ErrUnsupportedType,
		},
		{
			name:         "gif rejected",
			declaredType: "image/gif",
			size:         1024,
			wantErr:      ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.declaredType, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConvertToEmbedded(t *testing.T) {
	// Minimal PNG header is enough for content sniffing.
	pngBytes := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

	got, err := ConvertToEmbedded(bytes.NewReader(pngBytes), "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	payload := strings.TrimPrefix(got, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
}

func TestConvertToEmbedded_DeclaredTypeFallback(t *testing.T) {
	// Content that sniffs as octet-stream keeps the declared type prefix.
	got, err := ConvertToEmbedded(bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03}), "image/webp")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/webp;base64,"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestConvertToEmbedded_ReadFailure(t *testing.T) {
	_, err := ConvertToEmbedded(failingReader{}, "image/jpeg")
	assert.ErrorIs(t, err, ErrRead)
}
