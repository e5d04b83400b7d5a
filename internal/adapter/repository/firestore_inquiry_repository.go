package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"centeradmin/internal/domain/entity"
	"centeradmin/internal/domain/repository"
	"centeradmin/pkg/errors"
)

const inquiryCollection = "inquiries"

type firestoreInquiryRepository struct {
	client *firestore.Client
}

func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &firestoreInquiryRepository{
		client: client,
	}
}

func (r *firestoreInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if inquiry.ID == "" {
		doc := r.client.Collection(inquiryCollection).NewDoc()
		inquiry.ID = doc.ID
	}

	now := time.Now()
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = now
	}
	inquiry.UpdatedAt = now

	_, err := r.client.Collection(inquiryCollection).Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.StoreWrite("Failed to create inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	doc, err := r.client.Collection(inquiryCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Inquiry", err)
		}
		return nil, errors.Internal("Failed to get inquiry", err)
	}

	var inquiry entity.Inquiry
	if err := doc.DataTo(&inquiry); err != nil {
		return nil, errors.Internal("Failed to parse inquiry data", err)
	}

	return &inquiry, nil
}

func (r *firestoreInquiryRepository) List(ctx context.Context, statusFilter entity.InquiryStatus, limit, offset int) ([]*entity.Inquiry, int64, error) {
	query := r.client.Collection(inquiryCollection).OrderBy("createdAt", firestore.Desc)

	if statusFilter != "" {
		query = query.Where("status", "==", string(statusFilter))
	}

	// Counting requires a full read in Firestore, but inquiry volume is small.
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count inquiries", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var inquiries []*entity.Inquiry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate inquiries", err)
		}

		var inquiry entity.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, 0, errors.Internal("Failed to parse inquiry data", err)
		}
		inquiries = append(inquiries, &inquiry)
	}

	return inquiries, total, nil
}

func (r *firestoreInquiryRepository) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiry.UpdatedAt = time.Now()

	_, err := r.client.Collection(inquiryCollection).Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.StoreWrite("Failed to update inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(inquiryCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.StoreWrite("Failed to delete inquiry", err)
	}

	return nil
}
