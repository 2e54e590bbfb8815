package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
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

// NewDomainErrorWithDetails creates a new domain error carrying structured details
func NewDomainErrorWithDetails(code, message string, details map[string]any) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Common domain errors
var (
	ErrBadRequest          = NewDomainError("BAD_REQUEST", "Malformed or missing request input")
	ErrNoTrackingNumbers   = NewDomainError("BAD_REQUEST", "No attachment contained a tracking number")
	ErrUpstreamRejected    = NewDomainError("UPSTREAM_REJECTED", "Fulfillment service rejected the shipment")
	ErrUpstreamUnavailable = NewDomainError("UPSTREAM_UNAVAILABLE", "Fulfillment service is unreachable")
)
