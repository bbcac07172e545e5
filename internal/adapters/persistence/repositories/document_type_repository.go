package repositories

import (
	"context"

	"masterdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// documentTypeRepository implements DocumentTypeRepository over GORM
type documentTypeRepository struct {
	db *gorm.DB
}

// NewDocumentTypeRepository creates a new document type repository
func NewDocumentTypeRepository(db *gorm.DB) DocumentTypeRepository {
	return &documentTypeRepository{db: db}
}

// Create inserts a new document type
func (r *documentTypeRepository) Create(ctx context.Context, docType *models.DocumentType) error {
	return translateError(r.db.WithContext(ctx).Create(docType).Error)
}

// GetByID gets a document type by ID
func (r *documentTypeRepository) GetByID(ctx context.Context, id uint) (*models.DocumentType, error) {
	var docType models.DocumentType
	err := r.db.WithContext(ctx).First(&docType, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &docType, nil
}

// List lists active document types, newest created first
func (r *documentTypeRepository) List(ctx context.Context) ([]*models.DocumentType, error) {
	var docTypes []*models.DocumentType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&docTypes).Error
	return docTypes, translateError(err)
}

// ListAll lists all document types including inactive, newest created first
func (r *documentTypeRepository) ListAll(ctx context.Context) ([]*models.DocumentType, error) {
	var docTypes []*models.DocumentType
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&docTypes).Error
	return docTypes, translateError(err)
}

// Update saves a document type
func (r *documentTypeRepository) Update(ctx context.Context, docType *models.DocumentType) error {
	return translateError(r.db.WithContext(ctx).Save(docType).Error)
}
