package vault

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Mirror copies stored artifacts into an S3 bucket so the archive tier
// survives host loss.
type S3Mirror struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Mirror builds a mirror over the default AWS credential chain.
func NewS3Mirror(ctx context.Context, region, bucket, prefix string) (*S3Mirror, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 mirror: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3 mirror: load aws config: %w", err)
	}

	return &S3Mirror{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: strings.Trim(strings.TrimSpace(prefix), "/"),
	}, nil
}

func (m *S3Mirror) Put(ctx context.Context, key, contentType string, data []byte) error {
	objectKey := key
	if m.prefix != "" {
		objectKey = m.prefix + "/" + strings.TrimLeft(key, "/")
	}

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 mirror: put bucket=%s key=%s: %w", m.bucket, objectKey, err)
	}
	return nil
}

var _ Mirror = (*S3Mirror)(nil)
