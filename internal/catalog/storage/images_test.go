package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// 1x1 transparent PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestMaterializeInlinePayload(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/uploads")

	url, err := store.Materialize(42, "data:image/png;base64,"+tinyPNG)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/products/42/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "base64")

	// Decoded bytes on disk match the payload size.
	rel := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(store.RootDir(), filepath.FromSlash(rel)))
	require.NoError(t, err)

	want, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestMaterializeRemoteURLPassthrough(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/uploads")

	url, err := store.Materialize(1, "https://cdn.example.com/img/shirt.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img/shirt.jpg", url)
}

func TestMaterializeMalformedPayload(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/uploads")

	_, err := store.Materialize(1, "data:image/png;base64,@@@not-base64@@@")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	_, err = store.Materialize(1, "data:text/plain;base64,aGVsbG8=")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestMaterializeJPEGExtension(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/uploads")

	url, err := store.Materialize(7, "data:image/jpeg;base64,"+tinyPNG)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestMaterializeCreatesDirectoryIdempotently(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/uploads")

	first, err := store.Materialize(9, "data:image/png;base64,"+tinyPNG)
	require.NoError(t, err)
	second, err := store.Materialize(9, "data:image/png;base64,"+tinyPNG)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "concurrent-safe unique filenames")
}

func TestRemoveLocalFile(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/uploads")

	url, err := store.Materialize(3, "data:image/png;base64,"+tinyPNG)
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))

	rel := strings.TrimPrefix(url, "/uploads/")
	_, err = os.Stat(filepath.Join(store.RootDir(), filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// Remote URLs and already-removed files are not errors.
	assert.NoError(t, store.Remove("https://cdn.example.com/a.png"))
	assert.NoError(t, store.Remove(url))
}
