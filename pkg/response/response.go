// Package response defines the JSON envelope shared by all API handlers and
// the mapping from domain error codes to HTTP status codes.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retreathq/service-booking/internal/domain"
)

// Envelope is the top-level response shape.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// Meta carries pagination metadata alongside list responses.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// ErrorBody is the error payload: a stable code, a human-readable message and
// optional field-level details. No internal detail leaks through here.
type ErrorBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail pinpoints a validation failure to a request field.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Paginated writes a 200 response with pagination metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    items,
		Meta:    &Meta{Total: total, Page: page, Limit: limit, TotalPages: totalPages},
	})
}

// BadRequest writes a 400 VALIDATION_ERROR response.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: string(domain.CodeValidation), Message: message},
	})
}

// ValidationFailed writes a 400 VALIDATION_ERROR response with field details.
func ValidationFailed(c *gin.Context, details []FieldDetail) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    string(domain.CodeValidation),
			Message: "request validation failed",
			Details: details,
		},
	})
}

// Error writes the response for a domain error, mapping its code to an HTTP
// status. Untyped errors are reported as a generic 500 without leaking detail.
func Error(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Error:   &ErrorBody{Code: string(domain.CodeInternal), Message: "an unexpected error occurred"},
		})
		return
	}

	body := &ErrorBody{Code: string(de.Code), Message: de.Message}
	if de.Field != "" {
		body.Details = []FieldDetail{{Field: de.Field, Message: de.Message}}
	}
	c.JSON(statusFor(de.Code), Envelope{Success: false, Error: body})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeCapacityExceeded, domain.CodeInvalidDate, domain.CodeInvalidRange:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeBookingConflict:
		return http.StatusConflict
	case domain.CodeStorageConflict, domain.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
