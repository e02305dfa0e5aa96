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

// ErrStoreUnavailable signals that the backing store could not serve a
// request. Application services map low-level persistence errors onto it so
// the transport layer answers with a single retryable error code.
var ErrStoreUnavailable = NewDomainError("STORE_UNAVAILABLE", "Backing store is unavailable")
