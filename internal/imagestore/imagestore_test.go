package imagestore

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storedeskapps/barcode-register/internal/httperr"
)

func TestParseDataURL(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(payload)

	t.Run("jpeg round-trips untouched", func(t *testing.T) {
		data, ext, err := ParseDataURL("data:image/jpeg;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, "jpg", ext)
		assert.Equal(t, payload, data)
	})

	t.Run("png extension", func(t *testing.T) {
		_, ext, err := ParseDataURL("data:image/png;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, "png", ext)
	})

	t.Run("unknown subtype defaults to jpg", func(t *testing.T) {
		_, ext, err := ParseDataURL("data:image/tiff;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, "jpg", ext)
	})

	t.Run("rejects non-image payloads", func(t *testing.T) {
		_, _, err := ParseDataURL("data:text/plain;base64," + encoded)
		assert.True(t, httperr.IsBusiness(err, "invalid_image_payload"))
	})

	t.Run("rejects missing base64 marker", func(t *testing.T) {
		_, _, err := ParseDataURL("data:image/jpeg," + encoded)
		assert.True(t, httperr.IsBusiness(err, "invalid_image_payload"))
	})

	t.Run("rejects broken base64", func(t *testing.T) {
		_, _, err := ParseDataURL("data:image/jpeg;base64,not-base64!!!")
		assert.True(t, httperr.IsBusiness(err, "invalid_image_payload"))
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, _, err := ParseDataURL("data:image/jpeg;base64,")
		assert.True(t, httperr.IsBusiness(err, "invalid_image_payload"))
	})
}
