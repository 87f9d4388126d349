// Package storage opens the object storage bucket for vendor images.
package storage

import (
	"context"
	"log/slog"

	"eventsathi/config"
	"eventsathi/internal/domain/lifecycle"
	"eventsathi/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers are registered by their URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by the configured driver URL, e.g.
// "s3://vendor-images" or "file:///var/data/images".
func New(params Params) (*blob.Bucket, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			accessible, err := bucket.IsAccessible(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to check bucket accessibility")
			}
			if !accessible {
				return errors.New("storage bucket is not accessible")
			}
			params.Logger.Info("Storage bucket ready", slog.String("url", params.Config.Storage.BucketURL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}
