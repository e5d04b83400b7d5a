package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"centeradmin/internal/domain/entity"
	"centeradmin/pkg/errors"
)

const fakeURLPrefix = "https://storage.googleapis.com/test-bucket/"

type fakeFileService struct {
	blobs     map[string][]byte
	deleted   []string
	uploads   int
	uploadErr error
	deleteErr error
}

func newFakeFileService() *fakeFileService {
	return &fakeFileService{
		blobs: make(map[string][]byte),
	}
}

func (f *fakeFileService) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	f.uploads++
	url := fmt.Sprintf("%s%s/blob-%d", fakeURLPrefix, folder, f.uploads)
	f.blobs[url] = data
	return url, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, fileURL string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.deleted = append(f.deleted, fileURL)
	delete(f.blobs, fileURL)
	return nil
}

func (f *fakeFileService) OwnsURL(fileURL string) bool {
	return strings.HasPrefix(fileURL, fakeURLPrefix)
}

func (f *fakeFileService) Close() error {
	return nil
}

type fakeContentRepo struct {
	docs      map[string]map[string]*entity.ContentEntity
	nextID    int
	writes    int
	createErr error
	updateErr error
	deleteErr error
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		docs: make(map[string]map[string]*entity.ContentEntity),
	}
}

func (r *fakeContentRepo) collectionDocs(collection string) map[string]*entity.ContentEntity {
	if r.docs[collection] == nil {
		r.docs[collection] = make(map[string]*entity.ContentEntity)
	}
	return r.docs[collection]
}

func (r *fakeContentRepo) Create(ctx context.Context, collection string, content *entity.ContentEntity) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.nextID++
	content.ID = fmt.Sprintf("id-%d", r.nextID)
	now := time.Now()
	if content.CreatedAt.IsZero() {
		content.CreatedAt = now
	}
	content.UpdatedAt = now

	stored := *content
	stored.Fields = copyFields(content.Fields)
	r.collectionDocs(collection)[content.ID] = &stored
	r.writes++
	return nil
}

func (r *fakeContentRepo) GetByID(ctx context.Context, collection, id string) (*entity.ContentEntity, error) {
	stored, ok := r.collectionDocs(collection)[id]
	if !ok {
		return nil, errors.NotFound("Content", nil)
	}

	result := *stored
	result.Fields = copyFields(stored.Fields)
	return &result, nil
}

func (r *fakeContentRepo) List(ctx context.Context, collection string, activeOnly bool) ([]*entity.ContentEntity, error) {
	var contents []*entity.ContentEntity
	for _, stored := range r.collectionDocs(collection) {
		if activeOnly && !stored.IsActive {
			continue
		}
		result := *stored
		result.Fields = copyFields(stored.Fields)
		contents = append(contents, &result)
	}

	sort.Slice(contents, func(i, j int) bool {
		if contents[i].Order != contents[j].Order {
			return contents[i].Order < contents[j].Order
		}
		return contents[i].CreatedAt.Before(contents[j].CreatedAt)
	})

	return contents, nil
}

func (r *fakeContentRepo) UpdateFields(ctx context.Context, collection, id string, updates map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	stored, ok := r.collectionDocs(collection)[id]
	if !ok {
		return errors.NotFound("Content", nil)
	}

	for key, value := range updates {
		switch key {
		case "fields":
			for name, fieldValue := range value.(map[string]interface{}) {
				stored.Fields[name] = fieldValue
			}
		case "assetUrl":
			stored.AssetURL = value.(string)
		case "order":
			stored.Order = value.(int)
		case "isActive":
			stored.IsActive = value.(bool)
		case "updatedAt":
			stored.UpdatedAt = value.(time.Time)
		}
	}

	r.writes++
	return nil
}

func (r *fakeContentRepo) Delete(ctx context.Context, collection, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}

	delete(r.collectionDocs(collection), id)
	r.writes++
	return nil
}

func (r *fakeContentRepo) MaxOrder(ctx context.Context, collection string) (int, error) {
	max := 0
	for _, stored := range r.collectionDocs(collection) {
		if stored.Order > max {
			max = stored.Order
		}
	}
	return max, nil
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		copied[name] = value
	}
	return copied
}

type fakeInquiryRepo struct {
	docs   map[string]*entity.Inquiry
	nextID int
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{
		docs: make(map[string]*entity.Inquiry),
	}
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	r.nextID++
	inquiry.ID = fmt.Sprintf("inq-%d", r.nextID)
	stored := *inquiry
	r.docs[inquiry.ID] = &stored
	return nil
}

func (r *fakeInquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	stored, ok := r.docs[id]
	if !ok {
		return nil, errors.NotFound("Inquiry", nil)
	}

	result := *stored
	return &result, nil
}

func (r *fakeInquiryRepo) List(ctx context.Context, status entity.InquiryStatus, limit, offset int) ([]*entity.Inquiry, int64, error) {
	var inquiries []*entity.Inquiry
	for _, stored := range r.docs {
		if status != "" && stored.Status != status {
			continue
		}
		result := *stored
		inquiries = append(inquiries, &result)
	}

	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})

	total := int64(len(inquiries))
	if offset > len(inquiries) {
		offset = len(inquiries)
	}
	inquiries = inquiries[offset:]
	if limit > 0 && limit < len(inquiries) {
		inquiries = inquiries[:limit]
	}

	return inquiries, total, nil
}

func (r *fakeInquiryRepo) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	if _, ok := r.docs[inquiry.ID]; !ok {
		return errors.NotFound("Inquiry", nil)
	}

	inquiry.UpdatedAt = time.Now()
	stored := *inquiry
	r.docs[inquiry.ID] = &stored
	return nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, id string) error {
	delete(r.docs, id)
	return nil
}
