package filestore

import (
	"context"
	"sort"
	"strings"
	"time"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/core/domain"
)

const (
	blobDocumentTypes = "document_types"
	blobProducts      = "products"
)

// ============================================================
// Document Types
// ============================================================

// documentTypeStore implements repositories.DocumentTypeRepository
type documentTypeStore struct {
	store *Store
}

func seedDocumentTypes() []models.DocumentType {
	records := models.SeedDocumentTypes()
	for i := range records {
		records[i].ID = uint(i + 1)
	}
	return records
}

func (s *documentTypeStore) Create(ctx context.Context, docType *models.DocumentType) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobDocumentTypes, seedDocumentTypes)
	if err != nil {
		return err
	}

	for _, r := range records {
		if strings.EqualFold(r.Name, docType.Name) {
			return domain.ErrDuplicateName
		}
	}

	docType.ID = nextDocumentTypeID(records)
	stampNew(&docType.CreatedAt, &docType.UpdatedAt)

	records = append(records, *docType)
	return saveBlob(s.store, blobDocumentTypes, records)
}

func (s *documentTypeStore) GetByID(ctx context.Context, id uint) (*models.DocumentType, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobDocumentTypes, seedDocumentTypes)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *documentTypeStore) List(ctx context.Context) ([]*models.DocumentType, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*models.DocumentType, 0, len(all))
	for _, r := range all {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (s *documentTypeStore) ListAll(ctx context.Context) ([]*models.DocumentType, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobDocumentTypes, seedDocumentTypes)
	if err != nil {
		return nil, err
	}

	out := make([]*models.DocumentType, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *documentTypeStore) Update(ctx context.Context, docType *models.DocumentType) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobDocumentTypes, seedDocumentTypes)
	if err != nil {
		return err
	}

	for _, r := range records {
		if r.ID != docType.ID && strings.EqualFold(r.Name, docType.Name) {
			return domain.ErrDuplicateName
		}
	}

	for i := range records {
		if records[i].ID == docType.ID {
			docType.UpdatedAt = time.Now()
			records[i] = *docType
			return saveBlob(s.store, blobDocumentTypes, records)
		}
	}
	return domain.ErrNotFound
}

func nextDocumentTypeID(records []models.DocumentType) uint {
	var max uint
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// ============================================================
// Products
// ============================================================

// productStore implements repositories.ProductRepository
type productStore struct {
	store *Store
}

func seedProducts() []models.Product {
	records := models.SeedProducts()
	for i := range records {
		records[i].ID = uint(i + 1)
	}
	return records
}

func (s *productStore) Create(ctx context.Context, product *models.Product) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobProducts, seedProducts)
	if err != nil {
		return err
	}

	for _, r := range records {
		if strings.EqualFold(r.ProductName, product.ProductName) {
			return domain.ErrDuplicateName
		}
	}

	product.ID = nextProductID(records)
	stampNew(&product.CreatedAt, &product.UpdatedAt)

	records = append(records, *product)
	return saveBlob(s.store, blobProducts, records)
}

func (s *productStore) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobProducts, seedProducts)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *productStore) List(ctx context.Context) ([]*models.Product, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*models.Product, 0, len(all))
	for _, r := range all {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (s *productStore) ListAll(ctx context.Context) ([]*models.Product, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobProducts, seedProducts)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Product, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *productStore) Update(ctx context.Context, product *models.Product) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobProducts, seedProducts)
	if err != nil {
		return err
	}

	for _, r := range records {
		if r.ID != product.ID && strings.EqualFold(r.ProductName, product.ProductName) {
			return domain.ErrDuplicateName
		}
	}

	for i := range records {
		if records[i].ID == product.ID {
			product.UpdatedAt = time.Now()
			records[i] = *product
			return saveBlob(s.store, blobProducts, records)
		}
	}
	return domain.ErrNotFound
}

func nextProductID(records []models.Product) uint {
	var max uint
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// stampNew mirrors GORM's autoCreateTime/autoUpdateTime: zero timestamps are
// filled, explicit ones (seed data) are kept.
func stampNew(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
