package aws

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrObjectExists is returned when an upload would overwrite an existing object.
// Deck uploads never overwrite; collisions surface as a failure.
var ErrObjectExists = errors.New("object already exists")

type S3Client struct {
	client *s3.Client
}

func NewS3Client(ctx context.Context, region string) (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Client{client: s3.NewFromConfig(cfg)}, nil
}

// Upload stores an object once. An existing object at the same key is an error.
func (s *S3Client) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: awssdk.String(bucket),
		Key:    awssdk.String(key),
	})
	if err == nil {
		return fmt.Errorf("%w: %s", ErrObjectExists, key)
	}
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		var noSuchKey *types.NoSuchKey
		if !errors.As(err, &noSuchKey) {
			// HeadObject on a missing key reports 404 via either type depending
			// on the endpoint; anything else is a real transport failure.
			var apiErr interface{ ErrorCode() string }
			if !errors.As(err, &apiErr) || apiErr.ErrorCode() != "NotFound" {
				return fmt.Errorf("stat object %s: %w", key, err)
			}
		}
	}

	if contentType == "" {
		contentType = "application/pdf"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(bucket),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(body),
		ContentType: awssdk.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}
