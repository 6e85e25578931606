package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func testStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: "https://cdn.example.com",
		logger:        slog.Default(),
	}
}

func TestBlobStorage_UploadReturnsPublicURL(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	url, err := s.Upload(ctx, "stores/s1/cover/logo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/stores/s1/cover/logo.png", url)

	exists, err := s.bucket.Exists(ctx, "stores/s1/cover/logo.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBlobStorage_DeleteMissingIsNotAnError(t *testing.T) {
	s := testStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "does/not/exist"))
}

func TestBlobStorage_DeletePrefix(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	keys := []string{
		"stores/s1/products/p1/a",
		"stores/s1/products/p1/b",
		"stores/s1/products/p2/c",
	}
	for _, key := range keys {
		_, err := s.Upload(ctx, key, "image/jpeg", strings.NewReader("x"))
		require.NoError(t, err)
	}

	require.NoError(t, s.DeletePrefix(ctx, "stores/s1/products/p1/"))

	exists, err := s.bucket.Exists(ctx, "stores/s1/products/p1/a")
	require.NoError(t, err)
	assert.False(t, exists)

	// Blobs outside the prefix survive.
	exists, err = s.bucket.Exists(ctx, "stores/s1/products/p2/c")
	require.NoError(t, err)
	assert.True(t, exists)
}
