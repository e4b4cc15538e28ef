package crm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/persistence"
)

func TestCustomerService_Create(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(persistence.NewGormCustomerRepository(db))
	ctx := context.Background()

	t.Run("creates a valid customer", func(t *testing.T) {
		result, err := service.Create(ctx, CustomerInput{
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "+1234567890",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Customer created successfully", result.Message)
		require.NotNil(t, result.Customer)
		assert.Equal(t, "alice@example.com", result.Customer.Email)
		assert.Empty(t, result.Errors)
	})

	t.Run("rejects duplicate email case-insensitively", func(t *testing.T) {
		result, err := service.Create(ctx, CustomerInput{
			Name:  "Other Alice",
			Email: "ALICE@example.com",
		})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Nil(t, result.Customer)
		assert.Equal(t, []string{"Email already exists"}, result.Errors)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		result, err := service.Create(ctx, CustomerInput{Name: "Bob", Email: "not-an-email"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Invalid email format"}, result.Errors)
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		result, err := service.Create(ctx, CustomerInput{
			Name:  "Bob",
			Email: "bob@example.com",
			Phone: "abc",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Phone number must be like +1234567890 or 123-456-7890"}, result.Errors)
	})
}

func TestCustomerService_BulkCreate(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(persistence.NewGormCustomerRepository(db))
	ctx := context.Background()

	t.Run("creates valid rows and reports invalid ones", func(t *testing.T) {
		result, err := service.BulkCreate(ctx, []CustomerInput{
			{Name: "One", Email: "one@example.com"},
			{Name: "Bad", Email: "broken"},
			{Name: "Two", Email: "two@example.com", Phone: "123-456-7890"},
			{Name: "Dup", Email: "one@example.com"},
		})
		require.NoError(t, err)

		assert.Len(t, result.Customers, 2)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "Row 2: Invalid email 'broken'", result.Errors[0])
		assert.Equal(t, "Row 4: Email 'one@example.com' already exists", result.Errors[1])
	})

	t.Run("valid row count is independent of ordering", func(t *testing.T) {
		result, err := service.BulkCreate(ctx, []CustomerInput{
			{Name: "Bad", Email: "also-broken"},
			{Name: "Three", Email: "three@example.com"},
		})
		require.NoError(t, err)
		assert.Len(t, result.Customers, 1)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("empty batch creates nothing", func(t *testing.T) {
		result, err := service.BulkCreate(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Customers)
		assert.Empty(t, result.Errors)
	})
}

func TestCustomerService_List(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(persistence.NewGormCustomerRepository(db))
	ctx := context.Background()

	for _, input := range []CustomerInput{
		{Name: "Carol", Email: "carol@example.com", Phone: "+1999999999"},
		{Name: "Dave", Email: "dave@other.org"},
	} {
		result, err := service.Create(ctx, input)
		require.NoError(t, err)
		require.True(t, result.Success)
	}

	customers, err := service.List(ctx, crm.CustomerFilter{NameContains: "car"})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Carol", customers[0].Name)
}
