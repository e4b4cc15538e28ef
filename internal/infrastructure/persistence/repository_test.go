package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func mustCustomer(t *testing.T, repo *GormCustomerRepository, name, email, phone string) *crm.Customer {
	t.Helper()
	customer, err := crm.NewCustomer(name, email, phone)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), customer))
	return customer
}

func mustProduct(t *testing.T, repo *GormProductRepository, name, price string, stock int) *crm.Product {
	t.Helper()
	product, err := crm.NewProduct(name, decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestGormCustomerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	alice := mustCustomer(t, repo, "Alice", "alice@example.com", "+1234567890")
	mustCustomer(t, repo, "Bob", "bob@other.org", "123-456-7890")
	mustCustomer(t, repo, "alina", "alina@example.com", "")

	t.Run("FindByID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", found.Name)
	})

	t.Run("FindByID missing returns ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("ExistsByEmail is case-insensitive", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "ALICE@EXAMPLE.COM")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("name filter matches case-insensitively", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.CustomerFilter{NameContains: "ali"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("email filter", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.CustomerFilter{EmailContains: "other.org"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Bob", found[0].Name)
	})

	t.Run("phone prefix filter", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.CustomerFilter{PhonePrefix: "+1"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Alice", found[0].Name)
	})

	t.Run("created range filter", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		found, err := repo.FindAll(ctx, crm.CustomerFilter{CreatedAfter: &future})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("descending order by name", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.CustomerFilter{OrderBy: "-name"})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "Bob", found[0].Name)
	})

	t.Run("unknown sort fields fall back to default", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.CustomerFilter{OrderBy: "nonsense;drop"})
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})
}

func TestGormProductRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	cheap := mustProduct(t, repo, "Cable", "2.50", 3)
	mid := mustProduct(t, repo, "Mouse", "19.99", 12)
	mustProduct(t, repo, "Laptop", "999.99", 0)

	t.Run("FindByIDs drops missing IDs silently", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, []uuid.UUID{cheap.ID, mid.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("price range filter", func(t *testing.T) {
		min := decimal.RequireFromString("10")
		found, err := repo.FindAll(ctx, crm.ProductFilter{PriceMin: &min})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("stock below filter", func(t *testing.T) {
		threshold := 10
		found, err := repo.FindAll(ctx, crm.ProductFilter{StockBelow: &threshold})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("FindBelowStock", func(t *testing.T) {
		found, err := repo.FindBelowStock(ctx, crm.LowStockThreshold)
		require.NoError(t, err)
		require.Len(t, found, 2)
		for _, p := range found {
			assert.Less(t, p.Stock, crm.LowStockThreshold)
		}
	})

	t.Run("Save persists stock changes", func(t *testing.T) {
		cheap.Restock()
		require.NoError(t, repo.Save(ctx, cheap))

		found, err := repo.FindByID(ctx, cheap.ID)
		require.NoError(t, err)
		assert.Equal(t, 13, found.Stock)
	})

	t.Run("order by price descending", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.ProductFilter{OrderBy: "-price"})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "Laptop", found[0].Name)
	})
}

func TestGormOrderRepository(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := NewGormCustomerRepository(db)
	productRepo := NewGormProductRepository(db)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	alice := mustCustomer(t, customerRepo, "Alice", "alice@example.com", "")
	bob := mustCustomer(t, customerRepo, "Bob", "bob@example.com", "")
	keyboard := mustProduct(t, productRepo, "Keyboard", "10.10", 5)
	mousepad := mustProduct(t, productRepo, "Mousepad", "5.40", 9)

	aliceOrder, err := crm.NewOrder(alice, []crm.Product{*keyboard, *mousepad}, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, aliceOrder))

	bobOrder, err := crm.NewOrder(bob, []crm.Product{*mousepad}, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, bobOrder))

	t.Run("FindByID preloads customer and products", func(t *testing.T) {
		found, err := repo.FindByID(ctx, aliceOrder.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Customer)
		assert.Equal(t, "alice@example.com", found.Customer.Email)
		assert.Len(t, found.Products, 2)
		assert.Equal(t, "15.5", found.TotalAmount.String())
	})

	t.Run("filter by total amount", func(t *testing.T) {
		min := decimal.RequireFromString("10")
		found, err := repo.FindAll(ctx, crm.OrderFilter{TotalMin: &min})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, aliceOrder.ID, found[0].ID)
	})

	t.Run("filter by order date range", func(t *testing.T) {
		after := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		found, err := repo.FindAll(ctx, crm.OrderFilter{OrderedAfter: &after})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, bobOrder.ID, found[0].ID)
	})

	t.Run("filter by customer name", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.OrderFilter{CustomerName: "ali"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, aliceOrder.ID, found[0].ID)
	})

	t.Run("filter by product returns each order once", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.OrderFilter{ProductName: "mousepad"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("filter by product ID", func(t *testing.T) {
		id := keyboard.ID
		found, err := repo.FindAll(ctx, crm.OrderFilter{ProductID: &id})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, aliceOrder.ID, found[0].ID)
	})

	t.Run("order by total descending", func(t *testing.T) {
		found, err := repo.FindAll(ctx, crm.OrderFilter{OrderBy: "-total_amount"})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, aliceOrder.ID, found[0].ID)
	})
}
