package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStorage(bucket, "https://cdn.example.com/uploads/")
	ctx := context.Background()

	url, err := store.Put(ctx, "stores/s1/logo/abc.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/stores/s1/logo/abc.png", url)

	attrs, err := bucket.Attributes(ctx, "stores/s1/logo/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	data, err := bucket.ReadAll(ctx, "stores/s1/logo/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, "stores/s1/logo/abc.png"))
	exists, err := bucket.Exists(ctx, "stores/s1/logo/abc.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingIsNotAnError(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStorage(bucket, "")

	assert.NoError(t, store.Delete(context.Background(), "missing.png"))
}

func TestBlobStorage_RejectsUnsafeKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStorage(bucket, "")

	for _, key := range []string{"", "/abs.png", "stores/../secret.png"} {
		_, err := store.Put(context.Background(), key, strings.NewReader("x"), "image/png")
		assert.Error(t, err, key)
	}
}

func TestBlobStorage_EscapesPublicURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStorage(bucket, "https://cdn.example.com")

	url, err := store.Put(context.Background(), "stores/s 1/logo.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/stores/s%201/logo.png", url)
}

func TestNewObjectStorage_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{PublicBaseURL: "http://localhost/uploads"}}

	store, err := NewObjectStorage(StorageParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "k.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/uploads/k.png", url)

	lc.RequireStart().RequireStop()
}

func TestNewObjectStorage_FileBucket(t *testing.T) {
	dir := t.TempDir()
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "file://" + dir}}

	store, err := NewObjectStorage(StorageParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "stores/s1/banner.webp", strings.NewReader("x"), "image/webp")
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "stores/s1/banner.webp"))

	lc.RequireStart().RequireStop()
}
