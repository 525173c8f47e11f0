// Package s3 loads resource content from an S3-compatible object store.
package s3

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mwantia/namespace/data"
)

type S3Loader struct {
	mu     sync.RWMutex
	client *minio.Client
}

// NewS3Loader creates a loader for s3object descriptors backed by the
// given endpoint.
func NewS3Loader(endpoint, accessKey, secretKey string, useSsl bool) (*S3Loader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSsl,
	})
	if err != nil {
		return nil, err
	}

	return &S3Loader{
		client: client,
	}, nil
}

// Kind returns the descriptor discriminator handled by this loader.
func (*S3Loader) Kind() string {
	return data.DescriptorKindS3Object
}

// Load fetches the object the descriptor points at. Any store failure
// surfaces as data.ErrUnavailable.
func (sl *S3Loader) Load(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error) {
	object, ok := descriptor.(*data.S3ObjectDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: expected an s3object descriptor", data.ErrInvalidArgument)
	}

	sl.mu.RLock()
	defer sl.mu.RUnlock()

	reader, err := sl.client.GetObject(ctx, object.Bucket, object.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: s3 object %s/%s: %v",
			data.ErrUnavailable, object.Bucket, object.Key, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: s3 object %s/%s: %v",
			data.ErrUnavailable, object.Bucket, object.Key, err)
	}

	return content, nil
}
