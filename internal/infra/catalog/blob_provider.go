package catalog

import (
	"context"
	"log/slog"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// SourceBlob labels metrics for bucket snapshots.
const SourceBlob = "blob"

// blobProvider reads a registry export stored as a JSON array in a bucket.
type blobProvider struct {
	bucket      *blob.Bucket
	key         string
	departments []string
	metrics     service.EngineMetrics
	logger      *slog.Logger
}

// OpenBucket opens the bucket at bucketURL, e.g. file:///var/lib/destinos or gs://bucket.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog bucket %q", bucketURL)
	}

	return bucket, nil
}

// NewBlobProvider creates a provider reading key from bucket on every call.
func NewBlobProvider(bucket *blob.Bucket, key string, departments []string, metrics service.EngineMetrics, logger *slog.Logger) service.CatalogProvider {
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &blobProvider{
		bucket:      bucket,
		key:         key,
		departments: departments,
		metrics:     metrics,
		logger:      logger,
	}
}

func (p *blobProvider) ListDestinations(ctx context.Context, filter service.RegionFilter) ([]*entity.Destination, error) {
	destinations, err := p.read(ctx)
	p.metrics.IncCatalogFetch(SourceBlob, err)
	if err != nil {
		return nil, err
	}

	return applyFilter(destinations, p.departments, filter), nil
}

func (p *blobProvider) read(ctx context.Context) ([]*entity.Destination, error) {
	reader, err := p.bucket.NewReader(ctx, p.key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog snapshot %q", p.key)
	}
	defer reader.Close()

	return decodeRecords(reader)
}
