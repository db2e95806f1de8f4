package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// documentRepository implements the DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) repositories.DocumentRepository {
	return &documentRepository{db: db}
}

// Create records an ingested artifact
func (r *documentRepository) Create(ctx context.Context, doc *entities.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// Update persists document changes
func (r *documentRepository) Update(ctx context.Context, doc *entities.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// FindByID retrieves a document by ID
func (r *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Document, error) {
	var doc entities.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindBySourcePath retrieves the latest document ingested from a path
func (r *documentRepository) FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Document, error) {
	var doc entities.Document
	err := r.db.WithContext(ctx).
		Where("source_path = ?", sourcePath).
		Order("created_at DESC").
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByMeetingID retrieves the document behind a meeting
func (r *documentRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Document, error) {
	var doc entities.Document
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// List retrieves documents newest first
func (r *documentRepository) List(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error) {
	var docs []*entities.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Document{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&docs).Error
	return docs, total, err
}
