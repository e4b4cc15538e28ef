package crm

import (
	"testing"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Run("accepts valid addresses", func(t *testing.T) {
		for _, email := range []string{"alice@example.com", "bob.smith@sub.example.org", "x@y.co"} {
			assert.NoError(t, ValidateEmail(email), email)
		}
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "missing@tld@", "@example.com"} {
			err := ValidateEmail(email)
			require.Error(t, err, email)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, shared.CodeInvalidFormat, domainErr.Code)
			assert.Equal(t, "Invalid email format", domainErr.Message)
		}
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run("accepts supported formats", func(t *testing.T) {
		for _, phone := range []string{"+1234567890", "123-456-7890", "12345678"} {
			assert.NoError(t, ValidatePhone(phone), phone)
		}
	})

	t.Run("empty phone is valid", func(t *testing.T) {
		assert.NoError(t, ValidatePhone(""))
	})

	t.Run("rejects unsupported formats", func(t *testing.T) {
		for _, phone := range []string{"abc", "12345", "+", "123-456-789x"} {
			err := ValidatePhone(phone)
			require.Error(t, err, phone)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "Phone number must be like +1234567890 or 123-456-7890", domainErr.Message)
		}
	})
}

func TestValidatePrice(t *testing.T) {
	t.Run("parses exact decimals", func(t *testing.T) {
		price, err := ValidatePrice("999.99")
		require.NoError(t, err)
		assert.Equal(t, "999.99", price.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ValidatePrice("not-a-price")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInvalidFormat, domainErr.Code)
		assert.Equal(t, "Price must be a valid decimal", domainErr.Message)
	})

	t.Run("rejects zero and negative", func(t *testing.T) {
		for _, value := range []string{"0", "-1", "-0.01"} {
			_, err := ValidatePrice(value)
			require.Error(t, err, value)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, shared.CodeOutOfRange, domainErr.Code)
			assert.Equal(t, "Price must be positive", domainErr.Message)
		}
	})
}

func TestValidateStock(t *testing.T) {
	t.Run("nil defaults to zero", func(t *testing.T) {
		stock, err := ValidateStock(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, stock)
	})

	t.Run("rejects negative", func(t *testing.T) {
		negative := -3
		_, err := ValidateStock(&negative)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Stock cannot be negative", domainErr.Message)
	})

	t.Run("passes non-negative through", func(t *testing.T) {
		five := 5
		stock, err := ValidateStock(&five)
		require.NoError(t, err)
		assert.Equal(t, 5, stock)
	})
}

func TestNewCustomer(t *testing.T) {
	t.Run("creates with valid fields", func(t *testing.T) {
		customer, err := NewCustomer("Alice", "alice@example.com", "+1234567890")
		require.NoError(t, err)
		assert.NotEqual(t, "", customer.ID.String())
		assert.Equal(t, "Alice <alice@example.com>", customer.String())
		assert.False(t, customer.CreatedAt.IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer("", "alice@example.com", "")
		assert.Error(t, err)
	})

	t.Run("rejects bad email", func(t *testing.T) {
		_, err := NewCustomer("Alice", "nope", "")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Invalid email format", domainErr.Message)
	})
}
