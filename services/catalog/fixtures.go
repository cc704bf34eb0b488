// File: services/catalog/fixtures.go
package catalog

import (
	listingRepo "estateconnect/database/repository/listing"
	"estateconnect/models"
	"estateconnect/utils"

	"go.uber.org/zap"
)

// SeedListings returns the starter catalog used for empty databases and for
// tests. IDs are assigned by the repository on insert; here they are set for
// in-memory use.
func SeedListings() []models.Listing {
	return []models.Listing{
		{
			ID: 1, Title: "Modern 3-Bedroom Villa with Garden",
			Location: "Kampala, Central Region",
			PriceUGX: 320_000_000, PriceUSD: 85_000,
			Kind: models.KindSale, Category: "Houses for Sale",
			Description: "Beautiful modern villa with spacious garden and parking",
			Image:       "/images/property-1.jpg",
			Agent:       "John Mukasa",
			Featured:    true, Trending: true, Verified: true,
			Likes: 24, Views: 156,
			Status: models.StatusActive,
			Property: &models.PropertyDetails{
				Bedrooms: 3, Bathrooms: 2, AreaSqFt: 2500,
				Features: []string{"Garden", "Parking"},
			},
		},
		{
			ID: 2, Title: "Prime Commercial Land",
			Location: "Entebbe Road, Wakiso",
			PriceUGX: 450_000_000, PriceUSD: 120_000,
			Kind: models.KindSale, Category: "Land",
			Description: "Strategic location for commercial development",
			Image:       "/images/land-1.jpg",
			Agent:       "Sarah Nambi",
			Verified:    true,
			Likes:       18, Views: 89,
			Status:   models.StatusActive,
			Property: &models.PropertyDetails{AreaSqFt: 5000},
		},
		{
			ID: 3, Title: "Luxury Apartment Plans - High Rise",
			Location: "Digital Download",
			PriceUGX: 1_120_000, PriceUSD: 299,
			Kind: models.KindPlan, Category: "Infrastructure Plans",
			Description: "Complete architectural plans for luxury apartments",
			Image:       "/images/plans-1.jpg",
			Agent:       "Arch Studio Ltd",
			Featured:    true, Trending: true, Verified: true,
			Likes: 45, Views: 234,
			Status: models.StatusActive,
			Plan:   &models.PlanDetails{Format: "PDF, CAD, 3D"},
		},
		{
			ID: 4, Title: "Cozy 2-Bedroom Apartment",
			Location: "Nakasero, Kampala",
			PriceUGX: 3_000_000, PriceUSD: 800,
			Kind: models.KindRent, Category: "Houses for Rent",
			Description: "Furnished apartment in prime location",
			Image:       "/images/property-2.jpg",
			Agent:       "David Ssali",
			Verified:    true,
			Likes:       12, Views: 67,
			Status: models.StatusActive,
			Property: &models.PropertyDetails{
				Bedrooms: 2, Bathrooms: 1, AreaSqFt: 1200,
				Features: []string{"Furnished"},
			},
		},
		{
			ID: 5, Title: "Penthouse Condominium",
			Location: "Kololo, Kampala",
			PriceUGX: 940_000_000, PriceUSD: 250_000,
			Kind: models.KindSale, Category: "Condominiums",
			Description: "Luxury penthouse with panoramic city views",
			Image:       "/images/property-3.jpg",
			Agent:       "Grace Nakato",
			Featured:    true, Trending: true, Verified: true,
			Likes: 67, Views: 345,
			Status: models.StatusActive,
			Property: &models.PropertyDetails{
				Bedrooms: 4, Bathrooms: 3, AreaSqFt: 3200,
				Features: []string{"Balcony", "Gym"},
			},
		},
		{
			ID: 6, Title: "Agricultural Land - Fertile Soil",
			Location: "Mukono District",
			PriceUGX: 169_000_000, PriceUSD: 45_000,
			Kind: models.KindSale, Category: "Land",
			Description: "Perfect for farming and agricultural projects",
			Image:       "/images/land-2.jpg",
			Agent:       "Peter Kato",
			Verified:    true,
			Likes:       23, Views: 123,
			Status:   models.StatusActive,
			Property: &models.PropertyDetails{AreaSqFt: 10000},
		},
	}
}

// EnsureSeeded inserts the starter catalog when the listings collection is
// empty. Safe to call on every boot.
func EnsureSeeded(repo listingRepo.ListingRepository) error {
	n, err := repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	seeds := SeedListings()
	for i := range seeds {
		listing := seeds[i]
		listing.ID = 0 // assigned by the repository
		if err := repo.Create(&listing); err != nil {
			return err
		}
	}
	utils.GetLogger().Info("Seeded starter catalog", zap.Int("listings", len(seeds)))
	return nil
}
