package repository

import (
	"context"

	"centeradmin/internal/domain/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	List(ctx context.Context, status entity.InquiryStatus, limit, offset int) ([]*entity.Inquiry, int64, error)
	Update(ctx context.Context, inquiry *entity.Inquiry) error
	Delete(ctx context.Context, id string) error
}
