package repositories

import (
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	"gocloud.dev/blob/memblob"
)

// BlobRepository stores exported table files. Bucket urls use the gocloud
// scheme syntax (file://..., gs://..., mem://).
type BlobRepository interface {
	OpenStream(ctx context.Context, bucketUrl, key string) (io.WriteCloser, error)
	DeleteFile(ctx context.Context, bucketUrl, key string) error
}

type blobRepository struct {
	m       sync.Mutex
	buckets map[string]*blob.Bucket
}

func NewBlobRepository() BlobRepository {
	return &blobRepository{
		buckets: make(map[string]*blob.Bucket),
	}
}

func (repository *blobRepository) openBlobBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	repository.m.Lock()
	defer repository.m.Unlock()

	if repository.buckets[bucketUrl] == nil {
		var bucket *blob.Bucket
		var err error
		if bucketUrl == "mem://" {
			bucket = memblob.OpenBucket(nil)
		} else {
			bucket, err = blob.OpenBucket(ctx, bucketUrl)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to open bucket %s", bucketUrl)
			}
		}
		repository.buckets[bucketUrl] = bucket
	}
	return repository.buckets[bucketUrl], nil
}

func (repository *blobRepository) OpenStream(ctx context.Context, bucketUrl, key string) (io.WriteCloser, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return nil, err
	}
	return bucket.NewWriter(ctx, key, nil)
}

func (repository *blobRepository) DeleteFile(ctx context.Context, bucketUrl, key string) error {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return err
	}
	return errors.Wrapf(bucket.Delete(ctx, key), "failed to delete blob %s", key)
}
