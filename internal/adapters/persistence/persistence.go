// Package persistence wires the configured store driver to the repository
// interfaces consumed by the services.
package persistence

import (
	"masterdesk/internal/adapters/persistence/filestore"
	"masterdesk/internal/adapters/persistence/repositories"
	"masterdesk/internal/config"

	"gorm.io/gorm"
)

// Repositories is the full repository set for one store driver.
type Repositories struct {
	Users         repositories.UserRepository
	RefreshTokens repositories.RefreshTokenRepository
	DocumentTypes repositories.DocumentTypeRepository
	Products      repositories.ProductRepository
}

// Open builds the repository set for the configured driver. db may be nil
// when the file driver is selected.
func Open(cfg *config.Config, db *gorm.DB) (*Repositories, error) {
	if cfg.UsesDatabase() {
		return &Repositories{
			Users:         repositories.NewUserRepository(db),
			RefreshTokens: repositories.NewRefreshTokenRepository(db),
			DocumentTypes: repositories.NewDocumentTypeRepository(db),
			Products:      repositories.NewProductRepository(db),
		}, nil
	}

	store, err := filestore.New(cfg.Store.DataDir)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Users:         store.Users(),
		RefreshTokens: store.RefreshTokens(),
		DocumentTypes: store.DocumentTypes(),
		Products:      store.Products(),
	}, nil
}
