package usecase

import (
	"context"
	"time"

	"centeradmin/internal/domain/entity"
	"centeradmin/internal/domain/repository"
	"centeradmin/pkg/errors"
)

type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
}

func NewInquiryUseCase(inquiryRepo repository.InquiryRepository) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
	}
}

type CreateInquiryInput struct {
	Name       string
	Contact    string
	Subject    string
	Message    string
	ServiceTag string
}

// CreateInquiry is the only write path open to site visitors. New inquiries
// always start pending with no response.
func (uc *InquiryUseCase) CreateInquiry(ctx context.Context, input CreateInquiryInput) (*entity.Inquiry, error) {
	if input.Name == "" {
		return nil, errors.Validation("name is required", nil)
	}

	now := time.Now()
	inquiry := &entity.Inquiry{
		Name:       input.Name,
		Contact:    input.Contact,
		Subject:    input.Subject,
		Message:    input.Message,
		ServiceTag: input.ServiceTag,
		Status:     entity.InquiryPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

func (uc *InquiryUseCase) GetInquiry(ctx context.Context, id string) (*entity.Inquiry, error) {
	return uc.inquiryRepo.GetByID(ctx, id)
}

func (uc *InquiryUseCase) ListInquiries(ctx context.Context, status string, page, limit int) ([]*entity.Inquiry, int64, error) {
	statusFilter := entity.InquiryStatus(status)
	if status != "" && !statusFilter.Valid() {
		return nil, 0, errors.Validation("unknown inquiry status", nil)
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.inquiryRepo.List(ctx, statusFilter, limit, offset)
}

// AssignInquiry moves a pending inquiry to in progress. Assignment only moves
// forward from pending; anything else is rejected.
func (uc *InquiryUseCase) AssignInquiry(ctx context.Context, id string) (*entity.Inquiry, error) {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inquiry.Status != entity.InquiryPending {
		return nil, errors.Conflict("Inquiry can only be assigned while pending")
	}

	inquiry.Status = entity.InquiryInProgress

	if err := uc.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// SetStatus is the staff-driven transition to any of the three states.
// ResolvedAt is set exactly when the inquiry becomes resolved and cleared
// whenever it leaves that state; the response text survives reopening so
// staff can revise and re-resolve without retyping.
func (uc *InquiryUseCase) SetStatus(ctx context.Context, id string, target entity.InquiryStatus, response *string) (*entity.Inquiry, error) {
	if !target.Valid() {
		return nil, errors.Validation("unknown inquiry status", nil)
	}

	inquiry, err := uc.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if response != nil {
		inquiry.Response = *response
	}

	switch {
	case target == entity.InquiryResolved && inquiry.Status != entity.InquiryResolved:
		now := time.Now()
		inquiry.ResolvedAt = &now
	case target != entity.InquiryResolved:
		inquiry.ResolvedAt = nil
	}
	inquiry.Status = target

	if err := uc.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// DeleteInquiry is a hard delete; staff may remove an inquiry in any state.
func (uc *InquiryUseCase) DeleteInquiry(ctx context.Context, id string) error {
	if _, err := uc.inquiryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.inquiryRepo.Delete(ctx, id)
}
