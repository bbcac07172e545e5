package repositories

import (
	"context"

	"masterdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// productRepository implements ProductRepository over GORM
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return translateError(r.db.WithContext(ctx).Create(product).Error)
}

// GetByID gets a product by ID
func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// List lists active products, newest created first
func (r *productRepository) List(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	return products, translateError(err)
}

// ListAll lists all products including inactive, newest created first
func (r *productRepository) ListAll(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&products).Error
	return products, translateError(err)
}

// Update saves a product
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return translateError(r.db.WithContext(ctx).Save(product).Error)
}
