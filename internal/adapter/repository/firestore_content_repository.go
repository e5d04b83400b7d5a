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

type firestoreContentRepository struct {
	client *firestore.Client
}

// NewFirestoreContentRepository returns a document store gateway shared by
// every content collection; the collection name comes in per call.
func NewFirestoreContentRepository(client *firestore.Client) repository.ContentRepository {
	return &firestoreContentRepository{
		client: client,
	}
}

func (r *firestoreContentRepository) Create(ctx context.Context, collection string, content *entity.ContentEntity) error {
	if content.ID == "" {
		doc := r.client.Collection(collection).NewDoc()
		content.ID = doc.ID
	}

	now := time.Now()
	if content.CreatedAt.IsZero() {
		content.CreatedAt = now
	}
	content.UpdatedAt = now

	_, err := r.client.Collection(collection).Doc(content.ID).Set(ctx, content)
	if err != nil {
		return errors.StoreWrite("Failed to create content", err)
	}

	return nil
}

func (r *firestoreContentRepository) GetByID(ctx context.Context, collection, id string) (*entity.ContentEntity, error) {
	doc, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Content", err)
		}
		return nil, errors.Internal("Failed to get content", err)
	}

	var content entity.ContentEntity
	if err := doc.DataTo(&content); err != nil {
		return nil, errors.Internal("Failed to parse content data", err)
	}

	return &content, nil
}

func (r *firestoreContentRepository) List(ctx context.Context, collection string, activeOnly bool) ([]*entity.ContentEntity, error) {
	query := r.client.Collection(collection).
		OrderBy("order", firestore.Asc).
		OrderBy("createdAt", firestore.Asc)

	if activeOnly {
		query = query.Where("isActive", "==", true)
	}

	iter := query.Documents(ctx)
	var contents []*entity.ContentEntity

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate content", err)
		}

		var content entity.ContentEntity
		if err := doc.DataTo(&content); err != nil {
			return nil, errors.Internal("Failed to parse content data", err)
		}
		contents = append(contents, &content)
	}

	return contents, nil
}

// UpdateFields merges only the given paths into the document; untouched
// fields keep their stored values.
func (r *firestoreContentRepository) UpdateFields(ctx context.Context, collection, id string, updates map[string]interface{}) error {
	_, err := r.client.Collection(collection).Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return errors.StoreWrite("Failed to update content", err)
	}

	return nil
}

func (r *firestoreContentRepository) Delete(ctx context.Context, collection, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.StoreWrite("Failed to delete content", err)
	}

	return nil
}

// MaxOrder returns the highest order value in the collection, or 0 when the
// collection is empty. New records default to max+1 (appended last).
func (r *firestoreContentRepository) MaxOrder(ctx context.Context, collection string) (int, error) {
	iter := r.client.Collection(collection).
		OrderBy("order", firestore.Desc).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Internal("Failed to query max order", err)
	}

	var content entity.ContentEntity
	if err := doc.DataTo(&content); err != nil {
		return 0, errors.Internal("Failed to parse content data", err)
	}

	return content.Order, nil
}
