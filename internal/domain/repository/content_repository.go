package repository

import (
	"context"

	"centeradmin/internal/domain/entity"
)

type ContentRepository interface {
	Create(ctx context.Context, collection string, content *entity.ContentEntity) error
	GetByID(ctx context.Context, collection, id string) (*entity.ContentEntity, error)
	List(ctx context.Context, collection string, activeOnly bool) ([]*entity.ContentEntity, error)
	UpdateFields(ctx context.Context, collection, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	MaxOrder(ctx context.Context, collection string) (int, error)
}
