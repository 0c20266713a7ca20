// Package storage keeps uploaded documents in S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kurochkinivan/doc_intelligence/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client *minio.Client
	bucket string
	cfg    config.Storage
}

func NewMinioStorage(cfg config.Storage) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioStorage{
		client: client,
		bucket: cfg.Bucket,
		cfg:    cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %q: %w", name, err)
	}

	return nil
}

// PresignedURL returns a URL the OCR service can fetch the document from without credentials.
func (s *MinioStorage) PresignedURL(ctx context.Context, name string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, name, s.cfg.URLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %q: %w", name, err)
	}

	return u.String(), nil
}

func (s *MinioStorage) Delete(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %q: %w", name, err)
	}

	return nil
}
