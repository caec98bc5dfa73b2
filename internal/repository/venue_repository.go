package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/retreathq/service-booking/internal/domain"
	"github.com/retreathq/service-booking/internal/domain/venue"
)

// VenueModel is the GORM model for the venues table.
type VenueModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"size:255;not null"`
	Description   string  `gorm:"type:text"`
	Location      string  `gorm:"size:255;index;not null"`
	PricePerNight float64 `gorm:"not null"`
	Capacity      int     `gorm:"not null"`
	ImageURL      string  `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for the GORM model.
func (VenueModel) TableName() string {
	return "venues"
}

// GormVenueRepository is the GORM-based implementation of venue.Repository.
type GormVenueRepository struct {
	db *gorm.DB
}

// NewGormVenueRepository creates a new GormVenueRepository.
func NewGormVenueRepository(db *gorm.DB) *GormVenueRepository {
	return &GormVenueRepository{db: db}
}

// FindByID retrieves a venue by its identifier.
func (r *GormVenueRepository) FindByID(ctx context.Context, id int64) (*venue.Venue, error) {
	var model VenueModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Venue", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to find venue by ID: %w", err)
	}
	return toDomainVenue(&model), nil
}

// List retrieves venues matching the filter with pagination.
func (r *GormVenueRepository) List(ctx context.Context, filter venue.ListFilter, page, limit int) ([]*venue.Venue, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&VenueModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count venues: %w", err)
	}

	var models []VenueModel
	offset := (page - 1) * limit
	if err := query.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list venues: %w", err)
	}

	venues := make([]*venue.Venue, len(models))
	for i, m := range models {
		venues[i] = toDomainVenue(&m)
	}
	return venues, total, nil
}

// CitySuggestions returns up to limit distinct locations matching the query.
func (r *GormVenueRepository) CitySuggestions(ctx context.Context, query string, limit int) ([]string, error) {
	var locations []string
	if err := r.db.WithContext(ctx).
		Model(&VenueModel{}).
		Distinct("location").
		Where("location ILIKE ?", likePattern(query)).
		Order("location ASC").
		Limit(limit).
		Pluck("location", &locations).Error; err != nil {
		return nil, fmt.Errorf("failed to find city suggestions: %w", err)
	}
	return locations, nil
}

// Save persists a new venue and returns it with its assigned ID.
func (r *GormVenueRepository) Save(ctx context.Context, v *venue.Venue) (*venue.Venue, error) {
	model := VenueModel{
		Name:          v.Name(),
		Description:   v.Description(),
		Location:      v.Location(),
		PricePerNight: v.PricePerNight(),
		Capacity:      v.Capacity(),
		ImageURL:      v.ImageURL(),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to save venue: %w", err)
	}
	return toDomainVenue(&model), nil
}

func (r *GormVenueRepository) applyFilter(query *gorm.DB, filter venue.ListFilter) *gorm.DB {
	if filter.City != "" {
		query = query.Where("location ILIKE ?", likePattern(filter.City))
	}
	if filter.MinCapacity > 0 {
		query = query.Where("capacity >= ?", filter.MinCapacity)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price_per_night <= ?", filter.MaxPrice)
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains pattern with LIKE metacharacters escaped, so
// user input matches literally.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

func toDomainVenue(m *VenueModel) *venue.Venue {
	return venue.ReconstructVenue(
		m.ID,
		m.Name,
		m.Description,
		m.Location,
		m.PricePerNight,
		m.Capacity,
		m.ImageURL,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
