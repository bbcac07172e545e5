package services

import (
	"context"
	"log"
	"strings"
	"time"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/adapters/persistence/repositories"
)

// Status filter values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusAll      = "all"
)

// DocumentTypeInput is the create/update payload for a document type
type DocumentTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// DocumentTypeFilter narrows the list view. Filters never touch the store;
// they are applied to the snapshot after fetching.
type DocumentTypeFilter struct {
	Status string // "active" (default), "inactive" or "all"
	Search string // case-insensitive substring over name and description
}

// DocumentTypeService handles document type master data
type DocumentTypeService struct {
	repo repositories.DocumentTypeRepository
}

// NewDocumentTypeService creates a new document type service
func NewDocumentTypeService(repo repositories.DocumentTypeRepository) *DocumentTypeService {
	return &DocumentTypeService{repo: repo}
}

// List returns document types matching the filter, newest created first
func (s *DocumentTypeService) List(ctx context.Context, filter DocumentTypeFilter) ([]*models.DocumentType, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterDocumentTypes(records, filter), nil
}

// GetByID returns a single document type
func (s *DocumentTypeService) GetByID(ctx context.Context, id uint) (*models.DocumentType, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input against a fresh snapshot and persists the record
func (s *DocumentTypeService) Create(ctx context.Context, input *DocumentTypeInput, actor string) (*models.DocumentType, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateDocumentType(input.Name, snapshot, 0); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	docType := &models.DocumentType{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		IsActive:    active,
		CreatedBy:   &actor,
		UpdatedBy:   &actor,
	}
	if err := s.repo.Create(ctx, docType); err != nil {
		return nil, err
	}

	log.Printf("✅ Document type created: %s (id=%d) by %s", docType.Name, docType.ID, actor)
	return docType, nil
}

// Update replaces the editable fields of an existing record. Validation
// excludes the record itself, so re-saving unchanged data always succeeds.
func (s *DocumentTypeService) Update(ctx context.Context, id uint, input *DocumentTypeInput, actor string) (*models.DocumentType, error) {
	docType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateDocumentType(input.Name, snapshot, id); err != nil {
		return nil, err
	}

	docType.Name = strings.TrimSpace(input.Name)
	docType.Description = input.Description
	if input.IsActive != nil {
		docType.IsActive = *input.IsActive
	}
	docType.UpdatedBy = &actor
	docType.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, docType); err != nil {
		return nil, err
	}

	log.Printf("✅ Document type updated: %s (id=%d) by %s", docType.Name, docType.ID, actor)
	return docType, nil
}

// FilterDocumentTypes applies the status toggle and search box to a snapshot.
// Pure view transform; record order is preserved.
func FilterDocumentTypes(records []*models.DocumentType, f DocumentTypeFilter) []*models.DocumentType {
	status := f.Status
	if status == "" {
		status = StatusActive
	}

	result := make([]*models.DocumentType, 0, len(records))
	for _, r := range records {
		switch status {
		case StatusActive:
			if !r.IsActive {
				continue
			}
		case StatusInactive:
			if r.IsActive {
				continue
			}
		}
		if f.Search != "" && !containsFold(r.Name, f.Search) && !containsFold(r.Description, f.Search) {
			continue
		}
		result = append(result, r)
	}
	return result
}
