package storage

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client *minio.Client
	config *config.InternalConfig
}

func NewMinioStorage(minioClient *minio.Client, internalConfig *config.InternalConfig) contracts.StorageService {
	return &minioStorage{
		client: minioClient,
		config: internalConfig,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, objectName, contentType string, size int64, content io.Reader) error {
	bucketName := m.config.Minio.BucketName
	_, err := m.client.PutObject(ctx, bucketName, objectName, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, objectName string) (string, error) {
	bucketName := m.config.Minio.BucketName
	expiry := time.Duration(m.config.Minio.PresignedUrlObjectExpiryTimeInHour) * time.Hour
	presignedURL, err := m.client.PresignedGetObject(ctx, bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}
