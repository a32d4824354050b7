package sink

import (
	"context"

	"resource-economy/internal/config"
)

// Open picks the sink the output configuration asks for: S3 when a bucket
// is configured, the local output directory otherwise.
func Open(ctx context.Context, cfg config.OutputConfig) (Sink, error) {
	if cfg.S3.Enabled() {
		return NewS3(ctx, S3Config{
			Bucket:         cfg.S3.Bucket,
			Prefix:         cfg.S3.Prefix,
			Region:         cfg.S3.Region,
			Endpoint:       cfg.S3.Endpoint,
			AccessKey:      cfg.S3.AccessKey,
			SecretKey:      cfg.S3.SecretKey,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
	}
	return NewLocal(cfg.Dir), nil
}
