package application

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/retreathq/service-booking/internal/domain"
	"github.com/retreathq/service-booking/internal/domain/booking"
	"github.com/retreathq/service-booking/internal/domain/venue"
	"github.com/retreathq/service-booking/internal/events"
	"github.com/retreathq/service-booking/pkg/kafka"
)

// SubmitBookingRequest holds the data needed to submit a booking inquiry.
// Presence is enforced by binding; everything else is checked by the service
// so that check ordering (venue, capacity, dates, overlap) stays exact.
type SubmitBookingRequest struct {
	VenueID       int64  `json:"venueId" binding:"required"`
	CompanyName   string `json:"companyName" binding:"required"`
	Email         string `json:"email" binding:"required"`
	StartDate     string `json:"startDate" binding:"required"`
	EndDate       string `json:"endDate" binding:"required"`
	AttendeeCount int    `json:"attendeeCount" binding:"required"`
}

// VenueSnapshot is the denormalized venue summary attached to inquiry responses.
type VenueSnapshot struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

// InquiryDTO is the response representation of a booking inquiry.
type InquiryDTO struct {
	ID            int64          `json:"id"`
	VenueID       int64          `json:"venue_id"`
	CompanyName   string         `json:"company_name"`
	Email         string         `json:"email"`
	StartDate     time.Time      `json:"start_date"`
	EndDate       time.Time      `json:"end_date"`
	AttendeeCount int            `json:"attendee_count"`
	CreatedAt     time.Time      `json:"created_at"`
	Venue         *VenueSnapshot `json:"venue,omitempty"`
}

// EventPublisher publishes domain events; satisfied by *kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event kafka.CloudEvent) error
}

// BookingService orchestrates the booking-submission protocol. It holds no
// state between calls; every decision is made from a fresh read inside the
// commit-defining transaction.
type BookingService struct {
	venues    venue.Repository
	inquiries booking.InquiryRepository
	producer  EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	venues venue.Repository,
	inquiries booking.InquiryRepository,
	producer EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		venues:    venues,
		inquiries: inquiries,
		producer:  producer,
		logger:    logger,
	}
}

// SubmitBooking validates a candidate inquiry and commits it exactly when no
// conflicting inquiry exists. Checks run in a fixed order: venue existence,
// capacity, date validity, then the overlap probe inside a serializable
// transaction. A serialization abort is retried once; the retry observes any
// row the competing transaction committed and fails with a booking conflict.
func (s *BookingService) SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*InquiryDTO, error) {
	v, err := s.venues.FindByID(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}

	if req.AttendeeCount > v.Capacity() {
		return nil, domain.NewCapacityExceededError(req.AttendeeCount, v.Capacity())
	}

	dates, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	candidate, err := booking.NewInquiry(req.VenueID, req.CompanyName, req.Email, dates, req.AttendeeCount)
	if err != nil {
		return nil, err
	}

	persisted, err := s.commitInquiry(ctx, candidate, dates)
	if domain.IsCode(err, domain.CodeStorageConflict) {
		s.logger.Warn("serialization conflict on booking submission, retrying once",
			zap.Int64("venue_id", req.VenueID),
		)
		persisted, err = s.commitInquiry(ctx, candidate, dates)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking inquiry accepted",
		zap.Int64("inquiry_id", persisted.ID()),
		zap.Int64("venue_id", v.ID()),
		zap.Time("start_date", dates.Start()),
		zap.Time("end_date", dates.End()),
	)

	s.publishInquirySubmitted(ctx, persisted, v)

	dto := toInquiryDTO(persisted)
	dto.Venue = &VenueSnapshot{
		ID:            v.ID(),
		Name:          v.Name(),
		Location:      v.Location(),
		PricePerNight: v.PricePerNight(),
	}
	return &dto, nil
}

// commitInquiry runs the overlap check and conditional insert as one
// serializable unit. No partial writes survive a failed check.
func (s *BookingService) commitInquiry(ctx context.Context, candidate *booking.Inquiry, dates booking.DateRange) (*booking.Inquiry, error) {
	var persisted *booking.Inquiry
	err := s.inquiries.Transact(ctx, func(tx booking.InquiryRepository) error {
		existing, err := tx.FindOverlapping(ctx, candidate.VenueID(), dates)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewBookingConflictError()
		}
		persisted, err = tx.Create(ctx, candidate)
		return err
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

// GetInquiry retrieves a single inquiry by ID, with its venue snapshot.
func (s *BookingService) GetInquiry(ctx context.Context, id int64) (*InquiryDTO, error) {
	inquiry, err := s.inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toInquiryDTO(inquiry)
	if v, err := s.venues.FindByID(ctx, inquiry.VenueID()); err == nil {
		dto.Venue = &VenueSnapshot{
			ID:            v.ID(),
			Name:          v.Name(),
			Location:      v.Location(),
			PricePerNight: v.PricePerNight(),
		}
	}
	return &dto, nil
}

// GetBookingsForVenue retrieves all inquiries for a venue, used by callers to
// render unavailable dates.
func (s *BookingService) GetBookingsForVenue(ctx context.Context, venueID int64) ([]InquiryDTO, error) {
	if _, err := s.venues.FindByID(ctx, venueID); err != nil {
		return nil, err
	}

	inquiries, err := s.inquiries.FindByVenueID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	dtos := make([]InquiryDTO, len(inquiries))
	for i, inquiry := range inquiries {
		dtos[i] = toInquiryDTO(inquiry)
	}
	return dtos, nil
}

func (s *BookingService) publishInquirySubmitted(ctx context.Context, inquiry *booking.Inquiry, v *venue.Venue) {
	if s.producer == nil {
		return
	}

	evt := events.InquirySubmittedEvent{
		InquiryID:     inquiry.ID(),
		VenueID:       v.ID(),
		VenueName:     v.Name(),
		CompanyName:   inquiry.CompanyName(),
		Email:         inquiry.Email(),
		StartDate:     inquiry.Dates().Start(),
		EndDate:       inquiry.Dates().End(),
		AttendeeCount: inquiry.AttendeeCount(),
		OccurredAt:    time.Now().UTC(),
	}

	cloudEvent, err := kafka.NewCloudEvent("service-booking", events.InquirySubmitted, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", events.InquirySubmitted),
			zap.Error(err),
		)
		return
	}

	key := strconv.FormatInt(v.ID(), 10)
	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicBookingEvents),
			zap.String("event_type", events.InquirySubmitted),
			zap.Error(err),
		)
	}
}

func toInquiryDTO(inquiry *booking.Inquiry) InquiryDTO {
	return InquiryDTO{
		ID:            inquiry.ID(),
		VenueID:       inquiry.VenueID(),
		CompanyName:   inquiry.CompanyName(),
		Email:         inquiry.Email(),
		StartDate:     inquiry.Dates().Start(),
		EndDate:       inquiry.Dates().End(),
		AttendeeCount: inquiry.AttendeeCount(),
		CreatedAt:     inquiry.CreatedAt(),
	}
}
