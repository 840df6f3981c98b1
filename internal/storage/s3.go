// Package storage puts image blobs into S3-compatible object storage and
// resolves the public URLs records point at.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrEmptyKey = errors.New("storage: empty object key")

// Uploader is what handlers depend on; *S3Store is the real implementation.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client        s3API
	bucket        string
	publicBaseURL string
}

// Options configures NewS3Store. Endpoint is the API endpoint (MinIO, R2 or
// plain S3); PublicBaseURL is what download URLs are built from.
type Options struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

func NewS3Store(ctx context.Context, opts Options) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		// MinIO and friends want path-style addressing
		o.UsePathStyle = true
	})

	return &S3Store{
		client:        client,
		bucket:        opts.Bucket,
		publicBaseURL: opts.PublicBaseURL,
	}, nil
}

// Upload writes body under key and returns the public URL for it. Reusing a
// key overwrites the previous object.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyKey
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}

	return s.PublicURL(key), nil
}

// Delete removes the object under key. Deleting a missing key is not an
// error on S3.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL resolves the stable download URL for key.
func (s *S3Store) PublicURL(key string) string {
	base := strings.TrimRight(s.publicBaseURL, "/")
	return base + "/" + s.bucket + "/" + strings.TrimLeft(key, "/")
}

// ObjectKey builds the storage path for a filename inside a namespace,
// e.g. ObjectKey("segments", "sunset.jpg") -> "segments/sunset.jpg".
func ObjectKey(namespace, filename string) string {
	return strings.Trim(namespace, "/") + "/" + strings.TrimLeft(filename, "/")
}
