package services

import (
	"context"
	"log"
	"strings"
	"time"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/adapters/persistence/repositories"
)

// ProductInput is the create/update payload for a product
type ProductInput struct {
	ProductName string `json:"product_name"`
	ProductType string `json:"product_type"`
	ProductCode string `json:"product_code"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ProductFilter narrows the product list view. ProductType is an exact match
// against the fixed type list; the remaining fields are case-insensitive
// substring matches.
type ProductFilter struct {
	Status      string
	ProductType string
	ProductCode string
	ProductName string
	Description string
}

// ProductService handles product master data
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns products matching the filter, newest created first
func (s *ProductService) List(ctx context.Context, filter ProductFilter) ([]*models.Product, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(records, filter), nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input against a fresh snapshot and persists the record
func (s *ProductService) Create(ctx context.Context, input *ProductInput, actor string) (*models.Product, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(input, snapshot, 0); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	product := &models.Product{
		ProductName: strings.TrimSpace(input.ProductName),
		ProductType: input.ProductType,
		ProductCode: input.ProductCode,
		Description: input.Description,
		IsActive:    active,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product created: %s (id=%d) by %s", product.ProductName, product.ID, actor)
	return product, nil
}

// Update replaces the editable fields of an existing product
func (s *ProductService) Update(ctx context.Context, id uint, input *ProductInput, actor string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(input, snapshot, id); err != nil {
		return nil, err
	}

	product.ProductName = strings.TrimSpace(input.ProductName)
	product.ProductType = input.ProductType
	product.ProductCode = input.ProductCode
	product.Description = input.Description
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.UpdatedBy = actor
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product updated: %s (id=%d) by %s", product.ProductName, product.ID, actor)
	return product, nil
}

// FilterProducts applies the status toggle and the per-column filters to a
// snapshot. Pure view transform; record order is preserved.
func FilterProducts(records []*models.Product, f ProductFilter) []*models.Product {
	status := f.Status
	if status == "" {
		status = StatusActive
	}

	result := make([]*models.Product, 0, len(records))
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
		if f.ProductType != "" && r.ProductType != f.ProductType {
			continue
		}
		if !containsFold(r.ProductName, f.ProductName) {
			continue
		}
		if !containsFold(r.ProductCode, f.ProductCode) {
			continue
		}
		if !containsFold(r.Description, f.Description) {
			continue
		}
		result = append(result, r)
	}
	return result
}
