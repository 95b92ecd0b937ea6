package contracts

import (
	"context"
	"io"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName, contentType string, size int64, content io.Reader) error
	PresignedGetURL(ctx context.Context, objectName string) (string, error)
}
