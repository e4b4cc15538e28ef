package crm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/persistence"
)

func TestProductService_Create(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(persistence.NewGormProductRepository(db))
	ctx := context.Background()

	t.Run("creates with exact decimal price", func(t *testing.T) {
		result, err := service.Create(ctx, ProductInput{Name: "Laptop", Price: "999.99", Stock: intPtr(4)})
		require.NoError(t, err)
		require.NotNil(t, result.Product)
		assert.True(t, result.Success)
		assert.Equal(t, "999.99", result.Product.Price.String())
		assert.Equal(t, 4, result.Product.Stock)
	})

	t.Run("stock defaults to zero", func(t *testing.T) {
		result, err := service.Create(ctx, ProductInput{Name: "Cable", Price: "5"})
		require.NoError(t, err)
		require.NotNil(t, result.Product)
		assert.Equal(t, 0, result.Product.Stock)
	})

	t.Run("rejects unparseable price", func(t *testing.T) {
		result, err := service.Create(ctx, ProductInput{Name: "Junk", Price: "cheap"})
		require.NoError(t, err)
		assert.Nil(t, result.Product)
		assert.False(t, result.Success)
		assert.Equal(t, []string{"Price must be a valid decimal"}, result.Errors)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		result, err := service.Create(ctx, ProductInput{Name: "Freebie", Price: "0"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Price must be positive"}, result.Errors)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		result, err := service.Create(ctx, ProductInput{Name: "Ghost", Price: "1", Stock: intPtr(-1)})
		require.NoError(t, err)
		assert.Equal(t, []string{"Stock cannot be negative"}, result.Errors)
	})
}

func TestProductService_UpdateLowStock(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(persistence.NewGormProductRepository(db))
	ctx := context.Background()

	t.Run("no low-stock products", func(t *testing.T) {
		result, err := service.UpdateLowStock(ctx)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "No low-stock products found", result.Message)
		assert.Empty(t, result.UpdatedProducts)
	})

	t.Run("restocks only products below the threshold", func(t *testing.T) {
		for _, p := range []ProductInput{
			{Name: "Low", Price: "1", Stock: intPtr(3)},
			{Name: "Fine", Price: "1", Stock: intPtr(12)},
			{Name: "Empty", Price: "1", Stock: intPtr(0)},
		} {
			created, err := service.Create(ctx, p)
			require.NoError(t, err)
			require.NotNil(t, created.Product)
		}

		result, err := service.UpdateLowStock(ctx)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Updated 2 products", result.Message)
		require.Len(t, result.UpdatedProducts, 2)

		stocks := map[string]int{}
		for _, p := range result.UpdatedProducts {
			stocks[p.Name] = p.Stock
		}
		assert.Equal(t, 13, stocks["Low"])
		assert.Equal(t, 10, stocks["Empty"])

		// the stock-12 product is untouched
		all, err := service.List(ctx, crm.ProductFilter{})
		require.NoError(t, err)
		for _, p := range all {
			if p.Name == "Fine" {
				assert.Equal(t, 12, p.Stock)
			}
		}
	})
}
