// Package minio fetches catalog documents from MinIO and other
// S3-compatible object stores.
package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/modelgo/source"
)

// Source implements source.Source for a MinIO object.
type Source struct {
	client *minio.Client
	bucket string
	key    string
}

// New creates a MinIO source with a caller-provided client.
func New(client *minio.Client, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key}
}

// Fetch downloads the object.
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, s.Name())
		}
		return nil, err
	}
	return data, nil
}

// Name identifies the source.
func (s *Source) Name() string {
	return fmt.Sprintf("minio://%s/%s", s.bucket, s.key)
}
