package service

import (
	"context"
	"io"
)

// FileUploadService is the blob store gateway. URLs returned by UploadFile
// are durable and publicly fetchable. DeleteFile on a URL the store does not
// own, or that is already gone, is a no-op success.
type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	OwnsURL(fileURL string) bool
	Close() error
}
