package repositories

import (
	"context"

	"masterdesk/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// DocumentTypeRepository is the record store for document type masters.
// List and ListAll return records newest-created first; uniqueness failures
// surface as domain.ErrDuplicateName and missing ids as domain.ErrNotFound.
type DocumentTypeRepository interface {
	Create(ctx context.Context, docType *models.DocumentType) error
	GetByID(ctx context.Context, id uint) (*models.DocumentType, error)
	List(ctx context.Context) ([]*models.DocumentType, error)
	ListAll(ctx context.Context) ([]*models.DocumentType, error)
	Update(ctx context.Context, docType *models.DocumentType) error
}

// ProductRepository is the record store for product masters, same contract
// as DocumentTypeRepository.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	ListAll(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
}
