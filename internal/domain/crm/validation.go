package crm

import (
	"regexp"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// phoneRegex matches an optional leading +, a digit, six or more
// digits/hyphens, and a trailing digit, e.g. +1234567890 or 123-456-7890.
var phoneRegex = regexp.MustCompile(`^\+?\d[\d\-]{6,}\d$`)

var validate = validator.New()

// ValidateEmail checks that the value is a syntactically valid email address.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return shared.NewDomainError(shared.CodeInvalidFormat, "Invalid email format")
	}
	return nil
}

// ValidatePhone checks the phone number format. An empty value is valid
// because phone is an optional field.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRegex.MatchString(phone) {
		return shared.NewDomainError(shared.CodeInvalidFormat, "Phone number must be like +1234567890 or 123-456-7890")
	}
	return nil
}

// ValidatePrice parses the value as a decimal and checks that it is positive.
func ValidatePrice(value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, shared.NewDomainError(shared.CodeInvalidFormat, "Price must be a valid decimal")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, shared.NewDomainError(shared.CodeOutOfRange, "Price must be positive")
	}
	return price, nil
}

// ValidateStock normalizes an optional stock value. A nil value defaults to
// zero; a negative value is rejected.
func ValidateStock(value *int) (int, error) {
	if value == nil {
		return 0, nil
	}
	if *value < 0 {
		return 0, shared.NewDomainError(shared.CodeOutOfRange, "Stock cannot be negative")
	}
	return *value, nil
}
