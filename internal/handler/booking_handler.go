package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/retreathq/service-booking/internal/application"
	"github.com/retreathq/service-booking/pkg/response"
)

// BookingHandler handles HTTP requests for booking inquiries.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.SubmitBooking)
		bookings.GET("/:id", h.GetBooking)
	}
}

// SubmitBooking handles POST /api/v1/bookings.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req application.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationFailed(c, fieldDetails(verrs))
			return
		}
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetBooking handles GET /api/v1/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.GetInquiry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// fieldDetails flattens validator errors into field-level response details.
func fieldDetails(verrs validator.ValidationErrors) []response.FieldDetail {
	details := make([]response.FieldDetail, len(verrs))
	for i, fe := range verrs {
		msg := "is invalid"
		if fe.Tag() == "required" {
			msg = "is required"
		}
		details[i] = response.FieldDetail{Field: fe.Field(), Message: msg}
	}
	return details
}
