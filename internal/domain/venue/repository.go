package venue

import (
	"context"
)

// ListFilter narrows a venue listing. Zero values mean "no constraint".
type ListFilter struct {
	// City matches venues whose location contains this text, case-insensitively.
	City string
	// MinCapacity keeps venues holding at least this many attendees.
	MinCapacity int
	// MaxPrice keeps venues at or below this nightly price.
	MaxPrice float64
}

// Repository defines read access to venues. The booking core never mutates
// venue data; Save exists for the seeding tool only.
type Repository interface {
	// FindByID retrieves a venue by its identifier.
	FindByID(ctx context.Context, id int64) (*Venue, error)

	// List retrieves venues matching the filter, ordered by ID, with the
	// total count across all pages.
	List(ctx context.Context, filter ListFilter, page, limit int) ([]*Venue, int64, error)

	// CitySuggestions returns up to limit distinct locations containing the
	// query text, ordered alphabetically.
	CitySuggestions(ctx context.Context, query string, limit int) ([]string, error)

	// Save persists a new venue (seeding/administration).
	Save(ctx context.Context, v *Venue) (*Venue, error)
}
