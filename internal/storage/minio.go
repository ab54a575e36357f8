package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/crypticbroker/platform-api/internal/config"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store wraps the MinIO client for pitch deck and document uploads.
type Store struct {
	client *minioSDK.Client
	bucket string
}

// New connects to MinIO and ensures the upload bucket exists.
func New(ctx context.Context) (*Store, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &Store{client: client, bucket: config.MinioBucket}, nil
}

func allowedType(contentType string) bool {
	for _, t := range config.AllowedUploadTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// Upload stores the content under a random object name, preserving the
// original extension. Returns the object name.
func (s *Store) Upload(ctx context.Context, filename, contentType string, content io.Reader, size int64) (string, error) {
	if size <= 0 || size > config.MaxUploadBytes {
		return "", apperrors.BadRequest(fmt.Sprintf("file size must be between 1 byte and %d bytes", config.MaxUploadBytes))
	}
	if !allowedType(contentType) {
		return "", apperrors.BadRequest("unsupported file type")
	}

	objectName := uuid.NewString() + path.Ext(filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, content, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return objectName, nil
}

// Download returns the object content.
func (s *Store) Download(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// URL returns a presigned download link valid for the given duration.
func (s *Store) URL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Remove deletes the object from the bucket.
func (s *Store) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minioSDK.RemoveObjectOptions{})
}
