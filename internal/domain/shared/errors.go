package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the CRM domain
const (
	CodeInvalidFormat      = "INVALID_FORMAT"
	CodeOutOfRange         = "OUT_OF_RANGE"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeNotFound           = "NOT_FOUND"
	CodeEmptySelection     = "EMPTY_SELECTION"
	CodeTransactionFailure = "TRANSACTION_FAILURE"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(CodeDuplicateKey, "Resource already exists")
	ErrInvalidInput  = NewDomainError(CodeInvalidFormat, "Invalid input provided")
)
