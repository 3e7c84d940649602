package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidPrice     = "INVALID_PRICE"
	ErrCodeMissingTerm      = "MISSING_TERM"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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

// Common domain errors
var (
	ErrMissingFields = NewDomainError(ErrCodeMissingField, "Name, price, and description are required")
	ErrInvalidPrice  = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrPriceTooLarge = NewDomainError(ErrCodeInvalidPrice, "Price must be less than 100000000")
	ErrMissingTerm   = NewDomainError(ErrCodeMissingTerm, "Search term is required")
	ErrInvalidJSON   = NewDomainError(ErrCodeInvalidJSON, "Request body must be valid JSON")
)
