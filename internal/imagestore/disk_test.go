package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore(t *testing.T) {
	ctx := context.Background()

	root := t.TempDir()
	disk, err := NewDisk(filepath.Join(root, "images"))
	require.NoError(t, err)

	payload := []byte("fake jpeg bytes")

	t.Run("save writes the file and returns a relative path", func(t *testing.T) {
		path, err := disk.Save(ctx, payload, "jpg")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(path, "images/"))
		assert.True(t, strings.HasSuffix(path, ".jpg"))

		got, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("concurrent saves never share a name", func(t *testing.T) {
		a, err := disk.Save(ctx, payload, "jpg")
		require.NoError(t, err)
		b, err := disk.Save(ctx, payload, "jpg")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("remove deletes the file", func(t *testing.T) {
		path, err := disk.Save(ctx, payload, "jpg")
		require.NoError(t, err)

		require.NoError(t, disk.Remove(ctx, path))

		_, err = os.Stat(filepath.Join(root, filepath.FromSlash(path)))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("remove of a missing file is a no-op", func(t *testing.T) {
		assert.NoError(t, disk.Remove(ctx, "images/never-existed.jpg"))
		assert.NoError(t, disk.Remove(ctx, ""))
	})

	t.Run("url maps the stored path to the static route", func(t *testing.T) {
		assert.Equal(t, "/images/x.jpg", disk.URL("images/x.jpg"))
	})
}
