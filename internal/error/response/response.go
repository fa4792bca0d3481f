package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"telefono-http-service/internal/error/code"
)

// Payload is the transport-level part of the envelope: the status and the body
type Payload struct {
	Status int         `json:"status"`
	Body   interface{} `json:"body"`
}

// Response is the uniform envelope written for every request
type Response struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Code    int     `json:"code,omitempty"`
	Data    Payload `json:"data"`
}

// New builds an envelope whose success flag follows the status class.
func New(status int, message string, body interface{}) Response {
	return Response{
		Success: status < http.StatusBadRequest,
		Message: message,
		Data: Payload{
			Status: status,
			Body:   body,
		},
	}
}

// Write sends the envelope with the HTTP status it wraps. Statuses that
// forbid a body (1xx, 204, 304) go out as 200, data.status keeps the wrapped one.
func Write(c *gin.Context, resp Response) {
	c.JSON(transportStatus(resp.Data.Status), resp)
}

func transportStatus(status int) int {
	switch {
	case status >= 100 && status <= 199:
		return http.StatusOK
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return http.StatusOK
	}
	return status
}

// Success writes a successful envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	Write(c, New(status, message, data))
}

// OK is Success with status 200
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Fail writes the envelope registered for an error code
func Fail(c *gin.Context, errorCode int, data interface{}) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode), data)
}

// FailWithMessage is Fail with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	resp := New(code.GetStatus(errorCode), message, data)
	resp.Code = errorCode
	Write(c, resp)
}

// ParamError reports invalid request parameters
func ParamError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrValidation)
	}
	FailWithMessage(c, code.ErrValidation, message, nil)
}

// ServerError reports an unexpected failure
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// NotFound reports a missing resource
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	FailWithMessage(c, code.ErrRecordNotFound, message, nil)
}

// Unauthorized reports a missing or invalid token
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrTokenInvalid)
	}
	FailWithMessage(c, code.ErrTokenInvalid, message, nil)
}
