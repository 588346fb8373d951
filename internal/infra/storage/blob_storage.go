// Package storage stores uploaded branding assets in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes: file://, gs://, mem://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StorageParams holds dependencies for ObjectStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens the configured bucket and closes it on shutdown.
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Storage

	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, uploads are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Object storage initialized", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.StopHook(func() error {
		return errors.WithStack(bucket.Close())
	}))

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an open bucket. Public URLs are publicBaseURL + "/" + key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStorage) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return "", errors.Errorf("invalid object key %q", key)
	}

	if err := s.bucket.Upload(ctx, key, body, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	}); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return s.publicURL(key), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}
