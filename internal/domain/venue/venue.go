// Package venue holds the venue aggregate. Venues are created by seeding or
// administration; the booking core only ever reads them.
package venue

import (
	"strings"
	"time"

	"github.com/retreathq/service-booking/internal/domain"
)

// Venue is a bookable retreat property.
type Venue struct {
	id            int64
	name          string
	description   string
	location      string
	pricePerNight float64
	capacity      int
	imageURL      string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewVenue creates a Venue for seeding or administration.
func NewVenue(name, description, location string, pricePerNight float64, capacity int, imageURL string) (*Venue, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewFieldValidationError("name", "venue name is required")
	}
	if strings.TrimSpace(location) == "" {
		return nil, domain.NewFieldValidationError("location", "venue location is required")
	}
	if pricePerNight <= 0 {
		return nil, domain.NewFieldValidationError("pricePerNight", "price per night must be positive")
	}
	if capacity <= 0 {
		return nil, domain.NewFieldValidationError("capacity", "capacity must be a positive integer")
	}

	now := time.Now().UTC()
	return &Venue{
		name:          name,
		description:   description,
		location:      location,
		pricePerNight: pricePerNight,
		capacity:      capacity,
		imageURL:      imageURL,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructVenue rebuilds a Venue from persistence data (no validation).
func ReconstructVenue(id int64, name, description, location string, pricePerNight float64, capacity int, imageURL string, createdAt, updatedAt time.Time) *Venue {
	return &Venue{
		id:            id,
		name:          name,
		description:   description,
		location:      location,
		pricePerNight: pricePerNight,
		capacity:      capacity,
		imageURL:      imageURL,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ID returns the venue's identifier.
func (v *Venue) ID() int64 { return v.id }

// Name returns the venue's display name.
func (v *Venue) Name() string { return v.name }

// Description returns the venue's description.
func (v *Venue) Description() string { return v.description }

// Location returns the free-text city or region.
func (v *Venue) Location() string { return v.location }

// PricePerNight returns the nightly price.
func (v *Venue) PricePerNight() float64 { return v.pricePerNight }

// Capacity returns the maximum attendee count.
func (v *Venue) Capacity() int { return v.capacity }

// ImageURL returns the venue image URL, possibly empty.
func (v *Venue) ImageURL() string { return v.imageURL }

// CreatedAt returns the creation timestamp.
func (v *Venue) CreatedAt() time.Time { return v.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (v *Venue) UpdatedAt() time.Time { return v.updatedAt }
