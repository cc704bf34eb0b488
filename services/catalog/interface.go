package catalog

import (
	listingRepo "estateconnect/database/repository/listing"
	"estateconnect/models"

	"github.com/go-redis/redis/v8"
)

// SearchResult is one page of ordered matches plus the total match count used
// for the results header.
type SearchResult struct {
	Listings []models.Listing      `json:"listings"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PerPage  int                   `json:"perPage"`
	Criteria models.SearchCriteria `json:"criteria"`
}

// CatalogService exposes listing search and creation.
type CatalogService interface {
	// Search applies the criteria to the active listing collection.
	Search(criteria models.SearchCriteria) (*SearchResult, error)
	// GetByID fetches a single listing; nil when absent.
	GetByID(id int64) (*models.Listing, error)
	// GetByCreator fetches the listings a user has submitted.
	GetByCreator(userID string) ([]models.Listing, error)
	// CreateListing validates and persists a new listing in pending status.
	CreateListing(listing *models.Listing) error
	// ApproveListing moves a listing from pending to active.
	ApproveListing(id int64) error
	// Stats returns listing counts by kind plus pending-review count.
	Stats() (map[models.ListingKind]int64, int64, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo  listingRepo.ListingRepository
	Cache *redis.Client
}
