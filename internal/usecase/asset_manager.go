package usecase

import (
	"context"
	"io"

	"centeradmin/internal/domain/service"
	"centeradmin/pkg/errors"
	"centeradmin/pkg/logger"
)

// AssetUpload carries a new image file attached to a save operation.
type AssetUpload struct {
	Reader      io.Reader
	ContentType string
}

// AssetManager keeps a record's image reference and the blob store in step.
// The save path is deliberately two-phase and non-transactional: the new
// asset is uploaded and the record persisted before the old object is
// removed, so a crash in between leaves a dangling blob rather than a
// dangling reference.
type AssetManager struct {
	files service.FileUploadService
}

func NewAssetManager(files service.FileUploadService) *AssetManager {
	return &AssetManager{
		files: files,
	}
}

// Resolve returns the asset URL to persist. Without an upload the previous
// URL passes through untouched. An upload failure aborts the enclosing save;
// no document write may happen after it.
func (m *AssetManager) Resolve(ctx context.Context, upload *AssetUpload, previousURL, folder string) (string, error) {
	if upload == nil {
		return previousURL, nil
	}

	url, err := m.files.UploadFile(ctx, upload.Reader, upload.ContentType, folder)
	if err != nil {
		return "", errors.AssetUpload("Failed to upload image", err)
	}

	return url, nil
}

// CleanupOld removes the previous asset once the record no longer references
// it. Must only be called after the document write committed. Failures are
// logged and swallowed: losing an unreferenced blob to a failed delete is an
// accepted leak, blocking the save is not.
func (m *AssetManager) CleanupOld(ctx context.Context, previousURL, finalURL string) {
	if previousURL == "" || previousURL == finalURL {
		return
	}

	if !m.files.OwnsURL(previousURL) {
		// Externally hosted image, not ours to delete.
		return
	}

	if err := m.files.DeleteFile(ctx, previousURL); err != nil {
		logger.Warn("Failed to delete old asset %s: %v", previousURL, err)
	}
}
