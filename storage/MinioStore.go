package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"skilltracker/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioAPI is the subset of *minio.Client the store needs; tests swap in a fake.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

var _ MediaStore = (*MinioStore)(nil)

type MinioStore struct {
	api       minioAPI
	bucket    string
	root      string
	publicURL string
}

// NewMinioStore connects to a MinIO server and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, cfg config.Media) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return NewMinioStoreWithAPI(ctx, client, cfg.Bucket, cfg.Folder, publicURL)
}

// NewMinioStoreWithAPI allows injecting a fake client.
func NewMinioStoreWithAPI(ctx context.Context, api minioAPI, bucket, root, publicURL string) (*MinioStore, error) {
	s := &MinioStore{api: api, bucket: bucket, root: root, publicURL: publicURL}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}
	slog.Info("media store ready", "driver", "minio", "bucket", bucket)
	return s, nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

func (s *MinioStore) Upload(ctx context.Context, folder string, file File) (StoredMedia, error) {
	key := objectKey(s.root, folder, file.ContentType)
	_, err := s.api.PutObject(ctx, s.bucket, key, bytes.NewReader(file.Data), int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: file.ContentType})
	if err != nil {
		return StoredMedia{}, fmt.Errorf("failed to upload object: %w", err)
	}
	return StoredMedia{URL: joinURL(s.publicURL, key), MediaID: key}, nil
}

func (s *MinioStore) Delete(ctx context.Context, mediaID string) error {
	if err := s.api.RemoveObject(ctx, s.bucket, mediaID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
