package filestore

import (
	"context"
	"log"
	"strings"
	"time"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/core/domain"
	"masterdesk/internal/pkg/password"
)

const (
	blobUsers         = "users"
	blobRefreshTokens = "refresh_tokens"
)

// seedUsers creates the demo admin account so the file driver works without
// any database or manual setup.
func seedUsers() []models.User {
	hash, err := password.Hash(models.SeedAdminPassword)
	if err != nil {
		// bcrypt only fails on invalid cost; the seed constants never trigger it.
		log.Printf("⚠️ Failed to hash seed admin password: %v", err)
		return nil
	}
	return []models.User{
		{
			ID:        1,
			Username:  models.SeedAdminUsername,
			Password:  hash,
			Role:      "ADMIN",
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

// userStore implements repositories.UserRepository
type userStore struct {
	store *Store
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobUsers, seedUsers)
	if err != nil {
		return err
	}

	var max uint
	for _, r := range records {
		if strings.EqualFold(r.Username, user.Username) {
			return domain.ErrDuplicateName
		}
		if r.ID > max {
			max = r.ID
		}
	}

	user.ID = max + 1
	stampNew(&user.CreatedAt, &user.UpdatedAt)
	records = append(records, *user)
	return saveBlob(s.store, blobUsers, records)
}

func (s *userStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobUsers, seedUsers)
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

func (s *userStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobUsers, seedUsers)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Username == username {
			return &records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *userStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := s.GetByUsername(ctx, username)
	if err == domain.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// refreshTokenStore implements repositories.RefreshTokenRepository
type refreshTokenStore struct {
	store *Store
}

func (s *refreshTokenStore) Create(ctx context.Context, token *models.RefreshToken) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobRefreshTokens, emptySeed[models.RefreshToken])
	if err != nil {
		return err
	}

	var max uint
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	token.ID = max + 1
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	records = append(records, *token)
	return saveBlob(s.store, blobRefreshTokens, records)
}

func (s *refreshTokenStore) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobRefreshTokens, emptySeed[models.RefreshToken])
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].TokenHash == tokenHash && !records[i].IsRevoked() {
			return &records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *refreshTokenStore) Revoke(ctx context.Context, id uint) error {
	return s.revokeWhere(func(t *models.RefreshToken) bool { return t.ID == id })
}

func (s *refreshTokenStore) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	return s.revokeWhere(func(t *models.RefreshToken) bool { return t.TokenHash == tokenHash })
}

func (s *refreshTokenStore) RevokeAllByUserID(ctx context.Context, userID uint) error {
	return s.revokeWhere(func(t *models.RefreshToken) bool { return t.UserID == userID })
}

func (s *refreshTokenStore) revokeWhere(match func(*models.RefreshToken) bool) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobRefreshTokens, emptySeed[models.RefreshToken])
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range records {
		if match(&records[i]) && !records[i].IsRevoked() {
			records[i].RevokedAt = &now
		}
	}
	return saveBlob(s.store, blobRefreshTokens, records)
}

func (s *refreshTokenStore) DeleteExpired(ctx context.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records, err := loadBlob(s.store, blobRefreshTokens, emptySeed[models.RefreshToken])
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if !r.IsExpired() {
			kept = append(kept, r)
		}
	}
	return saveBlob(s.store, blobRefreshTokens, kept)
}
