// Package booking holds the booking-inquiry aggregate and the date-range
// value object at the heart of the conflict-resolution protocol.
package booking

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/retreathq/service-booking/internal/domain"
)

const maxCompanyNameLen = 200

// Inquiry is the aggregate root for a booking inquiry. Inquiries are created
// through the submission protocol and never updated or deleted afterwards.
type Inquiry struct {
	id            int64
	venueID       int64
	companyName   string
	email         string
	dates         DateRange
	attendeeCount int
	createdAt     time.Time
}

// NewInquiry creates a candidate Inquiry. The ID and creation timestamp are
// assigned by the store on create.
func NewInquiry(venueID int64, companyName, email string, dates DateRange, attendeeCount int) (*Inquiry, error) {
	if venueID <= 0 {
		return nil, domain.NewFieldValidationError("venueId", "venue ID must be a positive integer")
	}
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, domain.NewFieldValidationError("companyName", "company name is required")
	}
	if utf8.RuneCountInString(companyName) > maxCompanyNameLen {
		return nil, domain.NewFieldValidationError("companyName", "company name must be at most 200 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewFieldValidationError("email", "invalid email format")
	}
	if attendeeCount <= 0 {
		return nil, domain.NewFieldValidationError("attendeeCount", "attendee count must be a positive integer")
	}

	return &Inquiry{
		venueID:       venueID,
		companyName:   companyName,
		email:         email,
		dates:         dates,
		attendeeCount: attendeeCount,
	}, nil
}

// ReconstructInquiry rebuilds an Inquiry from persistence data (no validation).
func ReconstructInquiry(id, venueID int64, companyName, email string, dates DateRange, attendeeCount int, createdAt time.Time) *Inquiry {
	return &Inquiry{
		id:            id,
		venueID:       venueID,
		companyName:   companyName,
		email:         email,
		dates:         dates,
		attendeeCount: attendeeCount,
		createdAt:     createdAt,
	}
}

// ID returns the store-assigned identifier, or zero before creation.
func (i *Inquiry) ID() int64 { return i.id }

// VenueID returns the booked venue's identifier.
func (i *Inquiry) VenueID() int64 { return i.venueID }

// CompanyName returns the booking company's name.
func (i *Inquiry) CompanyName() string { return i.companyName }

// Email returns the contact email address.
func (i *Inquiry) Email() string { return i.email }

// Dates returns the booked date range.
func (i *Inquiry) Dates() DateRange { return i.dates }

// AttendeeCount returns the number of attendees.
func (i *Inquiry) AttendeeCount() int { return i.attendeeCount }

// CreatedAt returns the creation timestamp, or zero before creation.
func (i *Inquiry) CreatedAt() time.Time { return i.createdAt }
