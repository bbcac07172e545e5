package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	records []models.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	for _, r := range f.records {
		if strings.EqualFold(r.ProductName, product.ProductName) {
			return domain.ErrDuplicateName
		}
	}
	var max uint
	for _, r := range f.records {
		if r.ID > max {
			max = r.ID
		}
	}
	product.ID = max + 1
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
		product.UpdatedAt = product.CreatedAt
	}
	f.records = append(f.records, *product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			r := f.records[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) List(ctx context.Context) ([]*models.Product, error) {
	all, _ := f.ListAll(ctx)
	active := make([]*models.Product, 0, len(all))
	for _, r := range all {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]*models.Product, error) {
	out := make([]*models.Product, len(f.records))
	for i := range f.records {
		r := f.records[i]
		out[i] = &r
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	for _, r := range f.records {
		if r.ID != product.ID && strings.EqualFold(r.ProductName, product.ProductName) {
			return domain.ErrDuplicateName
		}
	}
	for i := range f.records {
		if f.records[i].ID == product.ID {
			f.records[i] = *product
			return nil
		}
	}
	return domain.ErrNotFound
}

func seededProductRepo() *fakeProductRepo {
	repo := &fakeProductRepo{}
	for i, p := range models.SeedProducts() {
		p.ID = uint(i + 1)
		repo.records = append(repo.records, p)
	}
	return repo
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with actor stamp", func(t *testing.T) {
		svc := NewProductService(seededProductRepo())

		created, err := svc.Create(ctx, &ProductInput{
			ProductName: "Metformin 500mg Tablet",
			ProductType: models.ProductTypeSmallMolecule,
			ProductCode: "MET-500",
		}, "admin")
		require.NoError(t, err)
		assert.Equal(t, uint(5), created.ID)
		assert.True(t, created.IsActive)
		assert.Equal(t, "admin", created.CreatedBy)
		assert.Equal(t, "admin", created.UpdatedBy)
	})

	t.Run("rejects duplicate name case-insensitively", func(t *testing.T) {
		svc := NewProductService(seededProductRepo())

		_, err := svc.Create(ctx, &ProductInput{
			ProductName: "adalimumab INJECTION",
			ProductType: models.ProductTypeBiologic,
		}, "admin")
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("rejects invalid type before hitting the store", func(t *testing.T) {
		repo := seededProductRepo()
		svc := NewProductService(repo)

		_, err := svc.Create(ctx, &ProductInput{
			ProductName: "Unique Enough",
			ProductType: "Widget",
		}, "admin")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Len(t, repo.records, 4)
	})
}

func TestProductServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("re-saving own name succeeds", func(t *testing.T) {
		svc := NewProductService(seededProductRepo())

		updated, err := svc.Update(ctx, 2, &ProductInput{
			ProductName: "Adalimumab Injection",
			ProductType: models.ProductTypeBiologic,
			ProductCode: "ADL-40",
		}, "admin")
		require.NoError(t, err)
		assert.Equal(t, "admin", updated.UpdatedBy)
	})

	t.Run("renaming onto another record conflicts", func(t *testing.T) {
		svc := NewProductService(seededProductRepo())

		_, err := svc.Update(ctx, 2, &ProductInput{
			ProductName: "Insulin Delivery Pen",
			ProductType: models.ProductTypeBiologic,
		}, "admin")
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		svc := NewProductService(seededProductRepo())

		_, err := svc.Update(ctx, 42, &ProductInput{
			ProductName: "Whatever",
			ProductType: models.ProductTypeDevice,
		}, "admin")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFilterProducts(t *testing.T) {
	records := []*models.Product{
		{ID: 4, ProductName: "Albuterol Metered-Dose Inhaler", ProductType: models.ProductTypeCombination, ProductCode: "ALB-MDI", Description: "Combination inhaler", IsActive: false},
		{ID: 3, ProductName: "Insulin Delivery Pen", ProductType: models.ProductTypeDevice, ProductCode: "PEN-01", Description: "Reusable pen device", IsActive: true},
		{ID: 2, ProductName: "Adalimumab Injection", ProductType: models.ProductTypeBiologic, ProductCode: "ADL-40", Description: "Monoclonal antibody", IsActive: true},
		{ID: 1, ProductName: "Atorvastatin 20mg Tablet", ProductType: models.ProductTypeSmallMolecule, ProductCode: "ATV-20", Description: "Oral statin tablet", IsActive: true},
	}

	t.Run("defaults to active only", func(t *testing.T) {
		got := FilterProducts(records, ProductFilter{})
		assert.Len(t, got, 3)
	})

	t.Run("inactive shows only inactive", func(t *testing.T) {
		got := FilterProducts(records, ProductFilter{Status: StatusInactive})
		require.Len(t, got, 1)
		assert.Equal(t, "Albuterol Metered-Dose Inhaler", got[0].ProductName)
	})

	t.Run("product type is an exact match", func(t *testing.T) {
		got := FilterProducts(records, ProductFilter{ProductType: models.ProductTypeDevice})
		require.Len(t, got, 1)
		assert.Equal(t, "Insulin Delivery Pen", got[0].ProductName)
	})

	t.Run("name filter is a substring match", func(t *testing.T) {
		got := FilterProducts(records, ProductFilter{ProductName: "insulin"})
		require.Len(t, got, 1)
		assert.Equal(t, uint(3), got[0].ID)
	})

	t.Run("code filter is a substring match", func(t *testing.T) {
		got := FilterProducts(records, ProductFilter{ProductCode: "atv"})
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].ID)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		got := FilterProducts(records, ProductFilter{
			ProductType: models.ProductTypeBiologic,
			Description: "antibody",
		})
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].ID)

		got = FilterProducts(records, ProductFilter{
			ProductType: models.ProductTypeBiologic,
			Description: "statin",
		})
		assert.Empty(t, got)
	})

	t.Run("order is preserved", func(t *testing.T) {
		got := FilterProducts(records, ProductFilter{Status: StatusAll})
		require.Len(t, got, 4)
		assert.Equal(t, uint(4), got[0].ID)
		assert.Equal(t, uint(1), got[3].ID)
	})
}
