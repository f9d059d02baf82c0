package handlers

const (
	RequestIDHeader = "X-Request-ID"

	// Request bodies larger than this are rejected
	maxBodyBytes = 1 << 20

	ErrInvalidJSON         = "Invalid JSON body"
	ErrTooManyRequests     = "Too many requests"
	ErrInternalServerError = "Internal server error"
)
