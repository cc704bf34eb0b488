// File: models/feed.go
package models

// Testimonial is a rotating home-page quote.
type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ReviewPayload is the asynq task payload for listing review.
type ReviewPayload struct {
	ListingID int64 `json:"listingId"`
}
