// Package s3 fetches catalog documents from Amazon S3.
package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/modelgo/source"
)

// Source implements source.Source for an S3 object.
type Source struct {
	client     *s3.Client
	downloader *manager.Downloader
	bucket     string
	key        string
}

// New creates an S3 source using the default AWS configuration chain
// (environment, shared config, instance role).
func New(ctx context.Context, bucket, key string, optFns ...func(*config.LoadOptions) error) (*Source, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewWithClient(s3.NewFromConfig(cfg), bucket, key), nil
}

// NewWithClient creates an S3 source with a caller-provided client.
func NewWithClient(client *s3.Client, bucket, key string) *Source {
	return &Source{
		client:     client,
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		key:        key,
	}
}

// Fetch downloads the object.
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)
	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, s.Name())
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// Name identifies the source.
func (s *Source) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}
