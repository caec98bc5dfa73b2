// Command seed populates the venues table with generated retreat venues so
// the catalog and booking flow can be exercised locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/retreathq/service-booking/internal/config"
	"github.com/retreathq/service-booking/internal/domain/venue"
	"github.com/retreathq/service-booking/internal/repository"
	"github.com/retreathq/service-booking/pkg/database"
	"github.com/retreathq/service-booking/pkg/logger"
)

var adjectives = []string{
	"Peaceful", "Serene", "Majestic", "Cozy", "Luxury", "Hidden", "Grand", "Rustic",
	"Modern", "Secluded", "Tranquil", "Vibrant", "Exclusive", "Private", "Charming",
}

var nouns = []string{
	"Retreat", "Haven", "Lodge", "Sanctuary", "Villa", "Manor", "Cottage", "Estate",
	"Hideaway", "Oasis", "Resort", "Chateau", "Bungalow", "Cabin", "Loft",
}

var locations = []string{
	"Bali", "Costa Rica", "Swiss Alps", "Tuscany", "Kyoto", "Sedona", "Maui",
	"Santorini", "Aspen", "Patagonia", "Lake Tahoe", "Banff", "Phuket",
	"Amalfi Coast", "Maldives", "Bora Bora", "Reykjavik", "Queenstown",
	"Marrakech", "Cape Town",
}

var images = []string{
	"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1540541338287-41700207dee6?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1518733057094-95b53143d2a7?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1490806843957-31f4c9a91c65?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1470770841072-f978cf4d019e?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1469796466635-60b8e72a1e53?w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=800&auto=format&fit=crop",
}

func main() {
	count := flag.Int("count", 50, "number of venues to generate")
	reset := flag.Bool("reset", false, "delete existing venues and inquiries first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewNamed(cfg.AppEnv, "seed")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DBConfig.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&repository.VenueModel{}, &repository.InquiryModel{}); err != nil {
		log.Fatal("failed to run auto-migration", zap.Error(err))
	}

	if *reset {
		// Inquiries first, the FK points at venues.
		if err := db.Exec("DELETE FROM booking_inquiries").Error; err != nil {
			log.Fatal("failed to clear inquiries", zap.Error(err))
		}
		if err := db.Exec("DELETE FROM venues").Error; err != nil {
			log.Fatal("failed to clear venues", zap.Error(err))
		}
		log.Info("cleared existing data")
	}

	repo := repository.NewGormVenueRepository(db)
	ctx := context.Background()

	seeded := 0
	for i := 0; i < *count; i++ {
		name := fmt.Sprintf("%s %s", pick(adjectives), pick(nouns))
		location := pick(locations)
		description := fmt.Sprintf(
			"Experience the ultimate relaxation at %s. A stunning property located in the heart of %s, "+
				"offering breathtaking views and top-tier amenities for your corporate retreat or team building event.",
			name, location,
		)

		v, err := venue.NewVenue(
			name,
			description,
			location,
			float64(randomInt(500, 5000)),
			randomInt(10, 200),
			pick(images),
		)
		if err != nil {
			log.Fatal("failed to build venue", zap.Error(err))
		}

		saved, err := repo.Save(ctx, v)
		if err != nil {
			log.Fatal("failed to save venue", zap.String("name", name), zap.Error(err))
		}
		log.Debug("seeded venue", zap.Int64("id", saved.ID()), zap.String("name", name))
		seeded++
	}

	log.Info("seeding finished", zap.Int("venues", seeded))
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func randomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}
