package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type BlobRepository struct {
	mock.Mock
}

func (r *BlobRepository) OpenStream(ctx context.Context, bucketUrl, key string) (io.WriteCloser, error) {
	args := r.Called(bucketUrl, key)
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (r *BlobRepository) DeleteFile(ctx context.Context, bucketUrl, key string) error {
	args := r.Called(bucketUrl, key)
	return args.Error(0)
}
