package booking

import (
	"context"
)

// InquiryRepository defines the persistence contract for booking inquiries.
//
// The no-double-booking invariant is enforced by running FindOverlapping
// followed by Create inside one Transact scope: the implementation must
// execute the callback at serializable isolation so two concurrent callers
// racing for overlapping dates cannot both commit. A detected serialization
// failure surfaces as a domain error with code STORAGE_CONFLICT.
type InquiryRepository interface {
	// FindOverlapping returns any single inquiry for the venue whose range
	// overlaps the given one, or nil if none exists.
	FindOverlapping(ctx context.Context, venueID int64, dates DateRange) (*Inquiry, error)

	// Create persists a new inquiry and returns it with its assigned ID and
	// creation timestamp.
	Create(ctx context.Context, inquiry *Inquiry) (*Inquiry, error)

	// FindByID retrieves an inquiry by its identifier.
	FindByID(ctx context.Context, id int64) (*Inquiry, error)

	// FindByVenueID retrieves all inquiries for a venue, oldest first.
	FindByVenueID(ctx context.Context, venueID int64) ([]*Inquiry, error)

	// Transact runs fn inside a serializable transaction. The repository
	// passed to fn operates on that transaction; the outer repository must
	// not be used inside the callback.
	Transact(ctx context.Context, fn func(tx InquiryRepository) error) error
}
