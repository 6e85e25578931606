// Package storage implements image blob storage on top of the portable
// gocloud.dev bucket API, so the same code serves GCS in production and a
// local directory during development.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"vitrina/config"
	"vitrina/internal/domain/lifecycle"
	"vitrina/internal/domain/service"
	"vitrina/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes: gs:// for production, file:// for development.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and returns it as a StorageService.
func New(params Params) (service.StorageService, error) {
	if params.Config.Storage == nil || params.Config.Storage.Bucket == "" {
		return nil, errors.New("storage bucket is not configured")
	}
	bucketURL := params.Config.Storage.Bucket

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes a blob under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Close to release the writer; the copy error is the one that matters.
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit blob %s", key)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

// Delete removes a single blob. Missing blobs are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// DeletePrefix removes every blob under the given key prefix.
func (s *blobStorage) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "failed to list blobs under %s", prefix)
		}

		if err := s.bucket.Delete(ctx, obj.Key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "failed to delete blob %s", obj.Key)
		}
	}

	return nil
}
