// Package docstore uploads application documents (ID copy, proof of
// registration, proof of funding) to a MinIO/S3 bucket and hands back the
// stored object URL.
package docstore

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/UniStayTeam/resident-service/internal/app/config"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
)

type MinioStore struct {
	client *minio.Client
	bucket string
	log    logger.Logger
}

func NewMinioStore(ctx context.Context, cfg config.DocumentStoreConfig, log logger.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errExists := client.BucketExists(ctx, cfg.Bucket)
		if errExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", cfg.Bucket, err, errExists)
		}
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, log: log}, nil
}

// Upload stores the document under a fresh object key, keeping the original
// extension, and returns the object URL.
func (s *MinioStore) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("documents/%s%s", uuid.New().String(), ext)

	info, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.log.Errorf("docstore: PutObject failed for %s: %v", objectKey, err)
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}
	s.log.Infof("docstore: uploaded %s (%d bytes)", info.Key, info.Size)

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey), nil
}
