package sink

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"resource-economy/internal/errors"
)

// S3Config locates the bucket artifacts are published to. Endpoint and
// ForcePathStyle support S3-compatible providers such as MinIO or R2.
type S3Config struct {
	Bucket         string
	Prefix         string
	Region         string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
}

// uploader is the part of manager.Uploader the sink uses
type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3 uploads artifacts to an S3 bucket under an optional key prefix
type S3 struct {
	uploader uploader
	bucket   string
	prefix   string
}

// NewS3 builds an S3 client from cfg. Static credentials are used when an
// access key is configured; otherwise the default AWS credential chain
// applies.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.Config("s3 bucket name is required", nil)
	}
	if cfg.Region == "" {
		return nil, errors.Config("s3 region is required", nil)
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Config("load aws config", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		endpoint := normaliseEndpoint(cfg.Endpoint)
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return newS3(manager.NewUploader(client), cfg.Bucket, cfg.Prefix), nil
}

func newS3(u uploader, bucket, prefix string) *S3 {
	return &S3{
		uploader: u,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
	}
}

// Describe implements Sink
func (s *S3) Describe() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

// Key returns the object key for an artifact name
func (s *S3) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// Put implements Sink
func (s *S3) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := s.Key(name)
	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Output(name, fmt.Errorf("upload s3://%s/%s: %w", s.bucket, key, err))
	}
	if out != nil && out.Location != "" {
		return out.Location, nil
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// normaliseEndpoint adds https:// to endpoints given without a scheme
func normaliseEndpoint(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return endpoint
	}
	return "https://" + endpoint
}
