package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// APIResponse is the envelope of every API response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondOKMessage sends a 200 success response with a message.
func RespondOKMessage(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Message: msg})
}

// RespondValidation sends a 400 response listing every validation message.
func RespondValidation(c *gin.Context, msgs []string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Errors: msgs})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Message: msg,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondDomainError maps err and sends the matching error response.
func RespondDomainError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		RespondValidation(c, verr.Messages)
		return
	}
	status, code, msg := MapDomainError(err)
	RespondError(c, status, code, msg)
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingExtractedData):
		return http.StatusBadRequest, "MISSING_EXTRACTED_DATA", "Extracted data is required"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT", "invalid input"
	case errors.Is(err, domain.ErrScenarioNotFound):
		return http.StatusNotFound, "SCENARIO_NOT_FOUND", "scenario not found"
	case errors.Is(err, domain.ErrUnknownFormat):
		return http.StatusBadRequest, "UNKNOWN_FORMAT", "unknown output format"
	case errors.Is(err, domain.ErrInvalidRules):
		return http.StatusInternalServerError, "INVALID_RULES", "tax rules are invalid"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}
