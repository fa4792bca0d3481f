package code

// HTTP status codes.
const (
	// StatusOK - 200: OK.
	StatusOK = 200
	// StatusCreated - 201: created.
	StatusCreated = 201
	// StatusNoContent - 204: no content.
	StatusNoContent = 204
	// StatusBadRequest - 400: bad request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusNotFound - 404: not found.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: dependency unavailable.
	StatusServiceUnavailable = 503
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request parameters are invalid.
	ErrValidation
	// ErrTokenInvalid - 401: bearer token missing or invalid.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limit exceeded.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: referenced user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserLookupFailed - 503: user existence could not be verified.
	ErrUserLookupFailed
	// ErrUserInvalid - 400: user payload rejected.
	ErrUserInvalid
)

// Phone error codes (102xxx).
const (
	// ErrTelefonoNotFound - 404: referenced phone does not exist.
	ErrTelefonoNotFound int = iota + 102000
	// ErrTelefonoInvalid - 400: phone payload rejected by the store.
	ErrTelefonoInvalid
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
