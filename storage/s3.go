package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"teamboard/config"
)

// S3Storage stores uploads in an S3 bucket and serves them from a public
// base URL (the bucket website endpoint or a CDN in front of it).
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Storage builds the S3 backend from config. Returns ErrNotConfigured
// when the bucket or credentials are missing so callers can degrade to a
// 503 on upload routes instead of failing startup.
func NewS3Storage(ctx context.Context, cfg config.Config) (*S3Storage, error) {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, ErrNotConfigured
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	baseURL := cfg.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Storage{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, fileName, base64Content, folder string) (string, string, error) {
	data, err := DecodeBase64(base64Content)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode upload content: %w", err)
	}

	key := path.Join(folder, uuid.NewString()+"-"+path.Base(fileName))

	contentType := mime.TypeByExtension(path.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.baseURL + "/" + key, key, nil
}

func (s *S3Storage) Delete(ctx context.Context, storagePath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", storagePath, err)
	}
	return nil
}

// DecodeBase64 accepts both raw base64 and data-URI payloads
// ("data:image/png;base64,...").
func DecodeBase64(content string) ([]byte, error) {
	if i := strings.Index(content, ","); i >= 0 && strings.HasPrefix(content, "data:") {
		content = content[i+1:]
	}
	return base64.StdEncoding.DecodeString(content)
}
