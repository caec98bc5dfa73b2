package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/retreathq/service-booking/internal/application"
	"github.com/retreathq/service-booking/internal/domain/venue"
	"github.com/retreathq/service-booking/pkg/response"
)

// VenueHandler handles HTTP requests for the venue catalog.
type VenueHandler struct {
	venues   *application.VenueService
	bookings *application.BookingService
}

// NewVenueHandler creates a new VenueHandler.
func NewVenueHandler(venues *application.VenueService, bookings *application.BookingService) *VenueHandler {
	return &VenueHandler{venues: venues, bookings: bookings}
}

// RegisterRoutes registers all venue routes on the given router group.
func (h *VenueHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/api/v1/venues")
	{
		group.GET("", h.ListVenues)
		group.GET("/suggestions", h.CitySuggestions)
		group.GET("/:id", h.GetVenue)
		group.GET("/:id/bookings", h.GetVenueBookings)
	}
}

// ListVenues handles GET /api/v1/venues with city/capacity/price filters.
func (h *VenueHandler) ListVenues(c *gin.Context) {
	filter := venue.ListFilter{
		City: c.Query("city"),
	}
	if raw := c.Query("capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity <= 0 {
			response.BadRequest(c, "capacity must be a positive integer")
			return
		}
		filter.MinCapacity = capacity
	}
	if raw := c.Query("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price <= 0 {
			response.BadRequest(c, "price must be a positive number")
			return
		}
		filter.MaxPrice = price
	}

	page, limit := parsePagination(c)

	result, err := h.venues.ListVenues(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// CitySuggestions handles GET /api/v1/venues/suggestions.
func (h *VenueHandler) CitySuggestions(c *gin.Context) {
	suggestions, err := h.venues.CitySuggestions(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, suggestions)
}

// GetVenue handles GET /api/v1/venues/:id.
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, ok := parseVenueID(c)
	if !ok {
		return
	}

	result, err := h.venues.GetVenue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetVenueBookings handles GET /api/v1/venues/:id/bookings, used by callers
// to render unavailable dates.
func (h *VenueHandler) GetVenueBookings(c *gin.Context) {
	id, ok := parseVenueID(c)
	if !ok {
		return
	}

	result, err := h.bookings.GetBookingsForVenue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func parseVenueID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid venue ID")
		return 0, false
	}
	return id, true
}

// parsePagination extracts page and limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
