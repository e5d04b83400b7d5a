package usecase

import (
	"context"
	"time"

	"centeradmin/internal/domain/entity"
	"centeradmin/internal/domain/repository"
	"centeradmin/pkg/errors"
)

// ContentUseCase is the one generic entity repository behind every admin
// content page. Concrete types differ only by their schema descriptor.
type ContentUseCase struct {
	contentRepo repository.ContentRepository
	assets      *AssetManager
}

func NewContentUseCase(contentRepo repository.ContentRepository, assets *AssetManager) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		assets:      assets,
	}
}

type SaveContentInput struct {
	Fields   map[string]interface{}
	Order    *int
	IsActive *bool
	Upload   *AssetUpload
}

func (uc *ContentUseCase) List(ctx context.Context, contentType string, activeOnly bool) ([]*entity.ContentEntity, error) {
	schema, ok := entity.SchemaFor(contentType)
	if !ok {
		return nil, errors.NotFound("Content type", nil)
	}

	return uc.contentRepo.List(ctx, schema.Collection, activeOnly)
}

func (uc *ContentUseCase) Get(ctx context.Context, contentType, id string) (*entity.ContentEntity, error) {
	schema, ok := entity.SchemaFor(contentType)
	if !ok {
		return nil, errors.NotFound("Content type", nil)
	}

	return uc.contentRepo.GetByID(ctx, schema.Collection, id)
}

func (uc *ContentUseCase) Create(ctx context.Context, contentType string, input SaveContentInput) (*entity.ContentEntity, error) {
	schema, ok := entity.SchemaFor(contentType)
	if !ok {
		return nil, errors.NotFound("Content type", nil)
	}

	// Validation happens before any store I/O, so a bad request has no
	// partial side effects.
	if err := schema.ValidateNew(input.Fields); err != nil {
		return nil, errors.Validation(err.Error(), err)
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		maxOrder, err := uc.contentRepo.MaxOrder(ctx, schema.Collection)
		if err != nil {
			return nil, err
		}
		order = maxOrder + 1
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	assetURL, err := uc.assets.Resolve(ctx, input.Upload, "", schema.AssetFolder)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content := &entity.ContentEntity{
		Type:      schema.Type,
		Fields:    input.Fields,
		AssetURL:  assetURL,
		Order:     order,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.contentRepo.Create(ctx, schema.Collection, content); err != nil {
		return nil, err
	}

	return content, nil
}

func (uc *ContentUseCase) Update(ctx context.Context, contentType, id string, input SaveContentInput) (*entity.ContentEntity, error) {
	schema, ok := entity.SchemaFor(contentType)
	if !ok {
		return nil, errors.NotFound("Content type", nil)
	}

	if err := schema.ValidatePartial(input.Fields); err != nil {
		return nil, errors.Validation(err.Error(), err)
	}

	content, err := uc.contentRepo.GetByID(ctx, schema.Collection, id)
	if err != nil {
		return nil, err
	}

	previousURL := content.AssetURL

	assetURL, err := uc.assets.Resolve(ctx, input.Upload, previousURL, schema.AssetFolder)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updatedAt": now,
	}
	if len(input.Fields) > 0 {
		updates["fields"] = input.Fields
	}
	if input.Order != nil {
		updates["order"] = *input.Order
	}
	if input.IsActive != nil {
		updates["isActive"] = *input.IsActive
	}
	if assetURL != previousURL {
		updates["assetUrl"] = assetURL
	}

	if err := uc.contentRepo.UpdateFields(ctx, schema.Collection, id, updates); err != nil {
		return nil, err
	}

	// The record now points at the new asset; only then is the old one
	// removed, best effort.
	uc.assets.CleanupOld(ctx, previousURL, assetURL)

	for name, value := range input.Fields {
		content.Fields[name] = value
	}
	content.AssetURL = assetURL
	if input.Order != nil {
		content.Order = *input.Order
	}
	if input.IsActive != nil {
		content.IsActive = *input.IsActive
	}
	content.UpdatedAt = now

	return content, nil
}

// Delete removes the document and, best effort, its asset. Blob removal runs
// first; a document delete failure is still reported as a failure even
// though the blob may already be gone.
func (uc *ContentUseCase) Delete(ctx context.Context, contentType, id string) error {
	schema, ok := entity.SchemaFor(contentType)
	if !ok {
		return errors.NotFound("Content type", nil)
	}

	content, err := uc.contentRepo.GetByID(ctx, schema.Collection, id)
	if err != nil {
		return err
	}

	uc.assets.CleanupOld(ctx, content.AssetURL, "")

	return uc.contentRepo.Delete(ctx, schema.Collection, id)
}

// ToggleActive flips visibility without touching fields or the asset.
func (uc *ContentUseCase) ToggleActive(ctx context.Context, contentType, id string) (*entity.ContentEntity, error) {
	schema, ok := entity.SchemaFor(contentType)
	if !ok {
		return nil, errors.NotFound("Content type", nil)
	}

	content, err := uc.contentRepo.GetByID(ctx, schema.Collection, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"isActive":  !content.IsActive,
		"updatedAt": now,
	}

	if err := uc.contentRepo.UpdateFields(ctx, schema.Collection, id, updates); err != nil {
		return nil, err
	}

	content.IsActive = !content.IsActive
	content.UpdatedAt = now

	return content, nil
}
