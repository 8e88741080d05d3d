package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every dashboard endpoint replies with
type APIResponse struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"statusCode" example:"200"`
	Message    string      `json:"message,omitempty" example:"ok"`
	Data       interface{} `json:"data,omitempty"`
	Code       string      `json:"code,omitempty" example:"AUTH_EXPIRED"`
}

func write(c *gin.Context, statusCode int, success bool, message string, data interface{}, code string) {
	c.JSON(statusCode, APIResponse{
		Success:    success,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Code:       code,
	})
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}, message ...string) {
	write(c, http.StatusOK, true, firstOr(message, ""), data, "")
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}, message ...string) {
	write(c, http.StatusCreated, true, firstOr(message, ""), data, "")
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	write(c, statusCode, false, message, nil, firstOr(errorCode, ""))
}

// ErrorWithData sends an error response that still carries a payload
// (rate limit details, login redirect target).
func ErrorWithData(c *gin.Context, statusCode int, message string, data interface{}, errorCode ...string) {
	write(c, statusCode, false, message, data, firstOr(errorCode, ""))
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// ValidationError sends a 422 Unprocessable Entity error
func ValidationError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnprocessableEntity, message, errorCode...)
}

// BadGateway sends a 502 when the EcoCheck API failed or could not be reached
func BadGateway(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadGateway, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// BindJSONError rejects a body that is not valid JSON or lacks a required field.
func BindJSONError(c *gin.Context, err error) {
	_ = c.Error(err)
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// SessionExpired tells the front-end to drop its state and go to the login screen
func SessionExpired(c *gin.Context, message string) {
	ErrorWithData(c, http.StatusUnauthorized, message, gin.H{"redirect": "/login"}, "AUTH_EXPIRED")
}
