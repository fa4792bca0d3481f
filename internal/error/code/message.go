package code

var codeMessageMap = map[int]string{
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "invalid request parameters",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests, try again later",

	ErrUserNotFound:     "referenced user does not exist",
	ErrUserLookupFailed: "unable to verify referenced user",
	ErrUserInvalid:      "invalid user",

	ErrTelefonoNotFound: "referenced phone does not exist",
	ErrTelefonoInvalid:  "invalid phone",

	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrUserNotFound:     StatusNotFound,
	ErrUserLookupFailed: StatusServiceUnavailable,
	ErrUserInvalid:      StatusBadRequest,

	ErrTelefonoNotFound: StatusNotFound,
	ErrTelefonoInvalid:  StatusBadRequest,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message registered for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status registered for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
