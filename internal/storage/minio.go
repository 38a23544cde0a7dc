// Package storage implements the blob storage adapter.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the blob storage settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// BlobStorage stores raw audio bytes in a fixed bucket and hands back
// publicly resolvable URLs.
type BlobStorage struct {
	client *minio.Client
	config Config
}

// NewBlobStorage creates the storage client and ensures the bucket exists.
func NewBlobStorage(ctx context.Context, config Config) (*BlobStorage, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &BlobStorage{client: client, config: config}, nil
}

// Store uploads the audio under a timestamp-prefixed key and returns
// the object's public URL. Objects are never deleted by this service.
func (s *BlobStorage) Store(ctx context.Context, data []byte, originalName, contentType string) (string, error) {
	key := fmt.Sprintf("%d-%s", time.Now().Unix(), originalName)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.config.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url := s.FileURL(key)
	logger.Log.Infow("stored blob", "key", key, "size", len(data), "url", url)

	return url, nil
}

// FileURL returns the public URL for a stored object key.
func (s *BlobStorage) FileURL(key string) string {
	scheme := "http"
	if s.config.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.config.Endpoint, s.config.Bucket, key)
}
