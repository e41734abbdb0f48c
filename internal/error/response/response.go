package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/code"
)

// FieldError describes a single failing field of a request payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes a raw JSON payload, matching the public API contract
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Message writes {message} with the HTTP status mapped from the error code
func Message(c *gin.Context, errorCode int, message string) {
	if message == "" {
		message = code.GetMessage(errorCode)
	}
	c.JSON(code.GetStatus(errorCode), gin.H{"message": message})
}

// NotFound writes a 404 {message} response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// ParamError writes a 400 {message} response
func ParamError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// ServerError writes a 500 {message} response
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrUnknown)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// NotAuthenticated writes the 401 {error} shape used by the admin gate
func NotAuthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": code.GetMessage(code.ErrNotAuthenticated)})
}

// AuthError writes a 401 {error} response with a custom message
func AuthError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

// TooManyRequests writes a 429 {message} response
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"message": code.GetMessage(code.ErrTooManyRequests)})
}

// ValidationFailed writes the 400 {message, errors} shape listing every failing field
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": code.GetMessage(code.ErrValidation),
		"errors":  errs,
	})
}

// Validation translates a binding error into the field-level validation response.
// Non-validator errors (malformed JSON and the like) degrade to a plain 400.
func Validation(c *gin.Context, err error) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		ParamError(c, "Invalid request body")
		return
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	ValidationFailed(c, fieldErrors)
}

// fieldMessage renders a human-readable message for a single validation failure
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return "Please enter a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
