package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/retreathq/service-booking/internal/domain"
	"github.com/retreathq/service-booking/internal/domain/venue"
)

const (
	suggestionLimit    = 5
	suggestionCacheTTL = 5 * time.Minute
)

// VenueDTO is the response representation of a venue.
type VenueDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	ImageURL      string  `json:"image_url,omitempty"`
}

// VenueService serves the venue catalog: listing, detail and city
// autocomplete. Suggestions are cached in Redis when a client is configured;
// cache failures are logged and never fail the request.
type VenueService struct {
	repo   venue.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewVenueService creates a new VenueService. cache may be nil.
func NewVenueService(repo venue.Repository, cache *redis.Client, logger *zap.Logger) *VenueService {
	return &VenueService{repo: repo, cache: cache, logger: logger}
}

// ListVenues retrieves a filtered, paginated page of venues.
func (s *VenueService) ListVenues(ctx context.Context, filter venue.ListFilter, page, limit int) (*domain.PaginatedResult[VenueDTO], error) {
	venues, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]VenueDTO, len(venues))
	for i, v := range venues {
		dtos[i] = toVenueDTO(v)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// GetVenue retrieves a single venue by ID.
func (s *VenueService) GetVenue(ctx context.Context, id int64) (*VenueDTO, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toVenueDTO(v)
	return &dto, nil
}

// CitySuggestions returns up to five distinct locations matching the query.
// An empty query yields an empty list without touching the store.
func (s *VenueService) CitySuggestions(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	cacheKey := fmt.Sprintf("venue:suggestions:%s", strings.ToLower(query))
	if cached, ok := s.cachedSuggestions(ctx, cacheKey); ok {
		return cached, nil
	}

	suggestions, err := s.repo.CitySuggestions(ctx, query, suggestionLimit)
	if err != nil {
		return nil, err
	}

	s.storeSuggestions(ctx, cacheKey, suggestions)
	return suggestions, nil
}

func (s *VenueService) cachedSuggestions(ctx context.Context, key string) ([]string, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("suggestion cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var suggestions []string
	if err := json.Unmarshal(raw, &suggestions); err != nil {
		return nil, false
	}
	return suggestions, true
}

func (s *VenueService) storeSuggestions(ctx context.Context, key string, suggestions []string) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, suggestionCacheTTL).Err(); err != nil {
		s.logger.Debug("suggestion cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func toVenueDTO(v *venue.Venue) VenueDTO {
	return VenueDTO{
		ID:            v.ID(),
		Name:          v.Name(),
		Description:   v.Description(),
		Location:      v.Location(),
		PricePerNight: v.PricePerNight(),
		Capacity:      v.Capacity(),
		ImageURL:      v.ImageURL(),
	}
}
