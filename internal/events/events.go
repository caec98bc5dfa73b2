// Package events defines the Kafka topics and event payloads published by
// the booking service.
package events

import "time"

// TopicBookingEvents carries all booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Event types published to TopicBookingEvents.
const (
	InquirySubmitted = "booking.inquiry.submitted"
)

// InquirySubmittedEvent is published after a booking inquiry commits.
type InquirySubmittedEvent struct {
	InquiryID     int64     `json:"inquiry_id"`
	VenueID       int64     `json:"venue_id"`
	VenueName     string    `json:"venue_name"`
	CompanyName   string    `json:"company_name"`
	Email         string    `json:"email"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	AttendeeCount int       `json:"attendee_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
