package dto

import "net/http"

// Error codes surfaced at the HTTP boundary
const (
	// ErrCodeBadRequest is used for malformed or missing top-level input,
	// including batches without a single tracking number
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUpstreamRejected is used when the fulfillment service returns
	// a non-success status
	ErrCodeUpstreamRejected = "UPSTREAM_REJECTED"
	// ErrCodeUpstreamUnavailable is used for transport failures reaching
	// the fulfillment service
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	// ErrCodeInternal is used for any other failure
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:          http.StatusBadRequest,
	ErrCodeUpstreamRejected:    http.StatusBadRequest,
	ErrCodeUpstreamUnavailable: http.StatusInternalServerError,
	ErrCodeInternal:            http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
