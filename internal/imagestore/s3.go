package imagestore

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/storedeskapps/barcode-register/internal/config"
)

// S3 stores images as objects under a key prefix. Paths persisted on rows
// are the object keys; URL prepends the configured public base.
type S3 struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	publicURL string
}

func NewS3(cfg *config.Config) *S3 {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		keyPrefix: strings.Trim(cfg.S3KeyPrefix, "/"),
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func (s *S3) Save(ctx context.Context, data []byte, ext string) (string, error) {
	key := s.keyPrefix + "/" + uuid.NewString() + "." + ext

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(ext)),
	})
	if err != nil {
		return "", &IOError{Op: "put", Path: key, Err: err}
	}

	return key, nil
}

func (s *S3) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	// DeleteObject is a no-op for missing keys, which matches the
	// missing-file-is-fine contract.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return &IOError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

func (s *S3) URL(path string) string {
	return s.publicURL + "/" + path
}

var _ Store = (*S3)(nil)
