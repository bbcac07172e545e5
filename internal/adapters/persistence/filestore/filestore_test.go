package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/core/domain"
	"masterdesk/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestDocumentTypeStoreSeedsOnFirstUse(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.DocumentTypes().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Newest created first
	assert.Equal(t, "Invalid Status Report", all[0].Name)
	assert.Equal(t, "Lab Report", all[1].Name)
	assert.Equal(t, "Prototype", all[2].Name)

	// Blob written to disk
	_, err = os.Stat(filepath.Join(store.dir, "document_types.json"))
	assert.NoError(t, err)
}

func TestDocumentTypeStoreCreate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.DocumentTypes()

	t.Run("assigns max plus one id", func(t *testing.T) {
		docType := &models.DocumentType{Name: "Design Spec", IsActive: true}
		require.NoError(t, repo.Create(ctx, docType))
		assert.Equal(t, uint(4), docType.ID)
		assert.False(t, docType.CreatedAt.IsZero())
	})

	t.Run("new record lists first", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Design Spec", all[0].Name)
	})

	t.Run("duplicate name rejected case-insensitively", func(t *testing.T) {
		err := repo.Create(ctx, &models.DocumentType{Name: "design SPEC"})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("survives a reopen", func(t *testing.T) {
		reopened, err := New(store.dir)
		require.NoError(t, err)
		all, err := reopened.DocumentTypes().ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})
}

func TestDocumentTypeStoreUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.DocumentTypes()

	t.Run("updates fields in place", func(t *testing.T) {
		docType, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)

		docType.Description = "changed"
		require.NoError(t, repo.Update(ctx, docType))

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "changed", got.Description)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("keeping own name is not a conflict", func(t *testing.T) {
		docType, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.NoError(t, repo.Update(ctx, docType))
	})

	t.Run("renaming onto another record conflicts", func(t *testing.T) {
		docType, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)

		docType.Name = "lab report"
		assert.ErrorIs(t, repo.Update(ctx, docType), domain.ErrDuplicateName)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		err := repo.Update(ctx, &models.DocumentType{ID: 99, Name: "Ghost"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDocumentTypeStoreList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	active, err := store.DocumentTypes().List(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, r := range active {
		assert.True(t, r.IsActive)
	}
}

func TestProductStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Products()

	t.Run("seeds one product per type", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)

		seen := map[string]bool{}
		for _, p := range all {
			seen[p.ProductType] = true
		}
		for _, pt := range models.ProductTypes {
			assert.True(t, seen[pt], "missing product type %s", pt)
		}
	})

	t.Run("create assigns max plus one id", func(t *testing.T) {
		p := &models.Product{ProductName: "Metformin 500mg Tablet", ProductType: models.ProductTypeSmallMolecule, IsActive: true}
		require.NoError(t, repo.Create(ctx, p))
		assert.Equal(t, uint(5), p.ID)
	})

	t.Run("duplicate product name rejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.Product{ProductName: "METFORMIN 500mg tablet", ProductType: models.ProductTypeSmallMolecule})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("active list excludes the inactive seed", func(t *testing.T) {
		active, err := repo.List(ctx)
		require.NoError(t, err)
		for _, p := range active {
			assert.NotEqual(t, "Albuterol Metered-Dose Inhaler", p.ProductName)
		}
	})
}

func TestUserStoreSeedsAdmin(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	admin, err := store.Users().GetByUsername(ctx, models.SeedAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", admin.Role)
	assert.True(t, admin.IsActive)
	assert.True(t, password.Verify(models.SeedAdminPassword, admin.Password))

	_, err = store.Users().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRefreshTokenStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.RefreshTokens()

	token := &models.RefreshToken{
		UserID:    1,
		TokenHash: "hash-a",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, token))

	t.Run("lookup by hash", func(t *testing.T) {
		got, err := repo.GetByTokenHash(ctx, "hash-a")
		require.NoError(t, err)
		assert.Equal(t, uint(1), got.UserID)
	})

	t.Run("revoked token is invisible", func(t *testing.T) {
		require.NoError(t, repo.RevokeByTokenHash(ctx, "hash-a"))
		_, err := repo.GetByTokenHash(ctx, "hash-a")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete expired keeps live tokens", func(t *testing.T) {
		expired := &models.RefreshToken{UserID: 1, TokenHash: "hash-old", ExpiresAt: time.Now().Add(-time.Hour)}
		live := &models.RefreshToken{UserID: 1, TokenHash: "hash-live", ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, repo.Create(ctx, expired))
		require.NoError(t, repo.Create(ctx, live))

		require.NoError(t, repo.DeleteExpired(ctx))

		_, err := repo.GetByTokenHash(ctx, "hash-old")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = repo.GetByTokenHash(ctx, "hash-live")
		assert.NoError(t, err)
	})
}
