package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/retreathq/service-booking/internal/domain"
	"github.com/retreathq/service-booking/internal/domain/booking"
)

// InquiryModel is the GORM model for the booking_inquiries table.
type InquiryModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	VenueID       int64     `gorm:"index:idx_inquiries_venue_dates,priority:1;not null"`
	CompanyName   string    `gorm:"size:200;not null"`
	Email         string    `gorm:"size:255;not null"`
	StartDate     time.Time `gorm:"index:idx_inquiries_venue_dates,priority:2;not null"`
	EndDate       time.Time `gorm:"index:idx_inquiries_venue_dates,priority:3;not null"`
	AttendeeCount int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (InquiryModel) TableName() string {
	return "booking_inquiries"
}

// GormInquiryRepository is the GORM-based implementation of InquiryRepository.
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GormInquiryRepository.
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// FindOverlapping returns any single inquiry for the venue whose date range
// overlaps the given one. Both endpoints are inclusive: an inquiry ending the
// day another begins counts as a conflict.
func (r *GormInquiryRepository) FindOverlapping(ctx context.Context, venueID int64, dates booking.DateRange) (*booking.Inquiry, error) {
	var model InquiryModel
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Where("start_date <= ? AND end_date >= ?", dates.End(), dates.Start()).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query overlapping inquiries: %w", translateError(err))
	}
	return toDomainInquiry(&model), nil
}

// Create persists a new inquiry and returns it with its assigned ID and
// creation timestamp.
func (r *GormInquiryRepository) Create(ctx context.Context, inquiry *booking.Inquiry) (*booking.Inquiry, error) {
	model := InquiryModel{
		VenueID:       inquiry.VenueID(),
		CompanyName:   inquiry.CompanyName(),
		Email:         inquiry.Email(),
		StartDate:     inquiry.Dates().Start(),
		EndDate:       inquiry.Dates().End(),
		AttendeeCount: inquiry.AttendeeCount(),
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", translateError(err))
	}
	return toDomainInquiry(&model), nil
}

// FindByID retrieves an inquiry by its identifier.
func (r *GormInquiryRepository) FindByID(ctx context.Context, id int64) (*booking.Inquiry, error) {
	var model InquiryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Inquiry", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to find inquiry by ID: %w", translateError(err))
	}
	return toDomainInquiry(&model), nil
}

// FindByVenueID retrieves all inquiries for a venue, oldest first.
func (r *GormInquiryRepository) FindByVenueID(ctx context.Context, venueID int64) ([]*booking.Inquiry, error) {
	var models []InquiryModel
	if err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("start_date ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find inquiries for venue: %w", translateError(err))
	}

	inquiries := make([]*booking.Inquiry, len(models))
	for i, m := range models {
		inquiries[i] = toDomainInquiry(&m)
	}
	return inquiries, nil
}

// Transact runs fn inside a serializable transaction, handing it a repository
// bound to that transaction. A serialization failure detected by the database
// rolls the transaction back and surfaces as a STORAGE_CONFLICT domain error.
func (r *GormInquiryRepository) Transact(ctx context.Context, fn func(tx booking.InquiryRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormInquiryRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return translateError(err)
	}
	return nil
}

// translateError maps driver-level failures onto the domain taxonomy.
// SQLSTATE 40001 (serialization_failure) and 40P01 (deadlock_detected) mark
// transactions the database aborted to preserve serializability.
func translateError(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return domain.NewStorageConflictError(err)
		}
	}
	return err
}

func toDomainInquiry(m *InquiryModel) *booking.Inquiry {
	return booking.ReconstructInquiry(
		m.ID,
		m.VenueID,
		m.CompanyName,
		m.Email,
		booking.RangeOf(m.StartDate, m.EndDate),
		m.AttendeeCount,
		m.CreatedAt,
	)
}
