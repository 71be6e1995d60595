package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"luxe-estates/internal/config"
	"luxe-estates/internal/database"
	"luxe-estates/internal/models"
	"luxe-estates/internal/repositories"
)

// Demo catalog for fresh environments. Idempotent: listings already present
// (matched by title) are skipped, so the command is safe to re-run.
var seedProperties = []models.Property{
	{
		Title:           "Luxury Villa in South Delhi",
		Description:     "Exquisite villa with a private garden, home theatre and staff quarters in one of Delhi's most coveted enclaves.",
		Location:        "Greater Kailash, Delhi",
		Price:           "4,50,00,000",
		Bedrooms:        4,
		Bathrooms:       4.5,
		Sqft:            3500,
		PropertyType:    "Villa",
		TransactionType: "Buy",
	},
	{
		Title:           "Premium Apartment in Gurgaon",
		Description:     "Modern apartment with golf-course views, concierge service and a double-height living room.",
		Location:        "Golf Course Road, Gurgaon",
		Price:           "2,80,00,000",
		Bedrooms:        3,
		Bathrooms:       3.5,
		Sqft:            2100,
		PropertyType:    "Apartment",
		TransactionType: "Buy",
	},
	{
		Title:           "Designer Penthouse in Noida",
		Description:     "Top-floor penthouse with a wraparound terrace, plunge pool and skyline views of the expressway corridor.",
		Location:        "Sector 94, Noida",
		Price:           "5,25,00,000",
		Bedrooms:        4,
		Bathrooms:       5,
		Sqft:            4200,
		PropertyType:    "Penthouse",
		TransactionType: "Buy",
	},
	{
		Title:           "Heritage Bungalow in Lutyens Delhi",
		Description:     "Restored colonial bungalow with manicured lawns, original teak flooring and a separate guest annexe.",
		Location:        "Prithviraj Road, Delhi",
		Price:           "9,50,00,000",
		Bedrooms:        5,
		Bathrooms:       6,
		Sqft:            6800,
		PropertyType:    "Bungalow",
		TransactionType: "Buy",
	},
	{
		Title:           "Serviced Apartment near Cyber City",
		Description:     "Fully furnished two-bedroom apartment with housekeeping, steps from the Cyber City business district.",
		Location:        "DLF Phase 2, Gurgaon",
		Price:           "95,00,000",
		Bedrooms:        2,
		Bathrooms:       2,
		Sqft:            1350,
		PropertyType:    "Apartment",
		TransactionType: "Rent",
	},
	{
		Title:           "Garden Floor in Vasant Vihar",
		Description:     "Ground-floor residence with a private lawn, covered parking for three cars and a dedicated study.",
		Location:        "Vasant Vihar, Delhi",
		Price:           "3,40,00,000",
		Bedrooms:        3,
		Bathrooms:       3,
		Sqft:            2600,
		PropertyType:    "Builder Floor",
		TransactionType: "Buy",
	},
}

func main() {
	cfg := config.New()
	ctx := context.Background()

	pool, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	repo := repositories.NewPropertyRepository(pool)

	seeded := 0
	for i := range seedProperties {
		property := seedProperties[i]

		exists, err := repo.ExistsByTitle(ctx, property.Title)
		if err != nil {
			log.Fatalf("failed to check existing listing %q: %v", property.Title, err)
		}
		if exists {
			log.Printf("Skipping %q (already seeded)", property.Title)
			continue
		}

		if err := repo.Create(ctx, &property); err != nil {
			log.Fatalf("failed to seed listing %q: %v", property.Title, err)
		}
		seeded++
		log.Printf("Seeded %q", property.Title)
	}

	log.Printf("Seeding complete: %d new listings, %d skipped", seeded, len(seedProperties)-seeded)
}
