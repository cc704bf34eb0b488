package listingRepo

import "estateconnect/models"

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// Create inserts a new listing, assigning it the next sequence ID.
	Create(listing *models.Listing) error
	// GetByID retrieves a listing by its sequence ID.
	GetByID(id int64) (*models.Listing, error)
	// GetAll retrieves all listings, insertion-ordered by sequence ID.
	GetAll() ([]models.Listing, error)
	// GetActive retrieves all listings with status "active".
	GetActive() ([]models.Listing, error)
	// GetByCreator retrieves the listings created by a user.
	GetByCreator(userID string) ([]models.Listing, error)
	// UpdateStatus moves a listing through the review lifecycle.
	UpdateStatus(id int64, status models.ListingStatus) error
	// Delete removes a listing by its sequence ID.
	Delete(id int64) error
	// CountByKind returns listing counts grouped by kind.
	CountByKind() (map[models.ListingKind]int64, error)
	// Count returns the total number of listings.
	Count() (int64, error)
	// CountPending returns the number of listings awaiting review.
	CountPending() (int64, error)
}
