//go:build integration

package main_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retreathq/service-booking/internal/application"
	"github.com/retreathq/service-booking/internal/domain"
	"github.com/retreathq/service-booking/internal/domain/venue"
	"github.com/retreathq/service-booking/internal/events"
)

func submitRequest(venueID int64, company, start, end string, attendees int) application.SubmitBookingRequest {
	return application.SubmitBookingRequest{
		VenueID:       venueID,
		CompanyName:   company,
		Email:         fmt.Sprintf("%s@example.com", company),
		StartDate:     start,
		EndDate:       end,
		AttendeeCount: attendees,
	}
}

// TestBookingScenario runs the full accept/conflict/accept sequence against a
// real PostgreSQL instance and asserts the committed inquiry is observable.
func TestBookingScenario(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	venueID := seedVenue(t, infra.DB, "Majestic Estate", 50)
	ctx := context.Background()

	// A: 03-01 to 03-05 succeeds.
	a, err := stack.Bookings.SubmitBooking(ctx, submitRequest(venueID, "alpha", "2025-03-01", "2025-03-05", 10))
	require.NoError(t, err)
	require.NotNil(t, a.Venue)
	assert.Equal(t, "Majestic Estate", a.Venue.Name)

	// B: 03-04 to 03-08 overlaps A.
	_, err = stack.Bookings.SubmitBooking(ctx, submitRequest(venueID, "bravo", "2025-03-04", "2025-03-08", 5))
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeBookingConflict))

	// C: 03-06 to 03-08 does not overlap A.
	_, err = stack.Bookings.SubmitBooking(ctx, submitRequest(venueID, "charlie", "2025-03-06", "2025-03-08", 5))
	require.NoError(t, err)

	assert.EqualValues(t, 2, countInquiries(t, infra.DB, venueID))

	// The committed inquiry is visible through the listing used for
	// disabled-date rendering.
	listed, err := stack.Bookings.GetBookingsForVenue(ctx, venueID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, a.ID, listed[0].ID)

	// The submission event reached the booking topic.
	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicBookingEvents, events.InquirySubmitted, 15*time.Second)

	var submitted events.InquirySubmittedEvent
	require.NoError(t, ce.ParseData(&submitted))
	assert.Equal(t, venueID, submitted.VenueID)
	assert.Equal(t, "Majestic Estate", submitted.VenueName)
}

// TestConcurrentOverlappingSubmissions races two submissions for the same
// venue and overlapping dates: exactly one may ever commit. The loser fails
// with a booking conflict, either directly or after its serialization-abort
// retry observes the winner's row.
func TestConcurrentOverlappingSubmissions(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	const rounds = 5
	for round := 0; round < rounds; round++ {
		venueID := seedVenue(t, infra.DB, fmt.Sprintf("Hidden Hideaway %d", round), 50)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		start := make(chan struct{})

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				req := submitRequest(venueID, fmt.Sprintf("racer%d", i), "2025-06-01", "2025-06-07", 10)
				_, errs[i] = stack.Bookings.SubmitBooking(context.Background(), req)
			}(i)
		}
		close(start)
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			code := domain.CodeOf(err)
			assert.Contains(t,
				[]domain.ErrorCode{domain.CodeBookingConflict, domain.CodeStorageConflict},
				code,
				"loser must fail with a conflict, got %v", err,
			)
		}
		require.Equal(t, 1, succeeded, "exactly one submission may commit")
		require.EqualValues(t, 1, countInquiries(t, infra.DB, venueID), "no double booking")
	}
}

// TestVenueCatalog exercises listing filters and suggestions against real SQL.
func TestVenueCatalog(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	seedVenue(t, infra.DB, "Tranquil Cabin", 20)
	seedVenue(t, infra.DB, "Grand Manor", 120)
	ctx := context.Background()

	result, err := stack.Venues.ListVenues(ctx, venue.ListFilter{MinCapacity: 100}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Grand Manor", result.Items[0].Name)

	suggestions, err := stack.Venues.CitySuggestions(ctx, "tahoe")
	require.NoError(t, err)
	// Both venues share one location; suggestions are distinct.
	assert.Equal(t, []string{"Lake Tahoe"}, suggestions)
}
