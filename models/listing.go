// File: models/listing.go
package models

import (
	"fmt"
	"time"
)

// ListingKind classifies a listing and governs which optional attributes apply.
type ListingKind string

const (
	KindSale ListingKind = "sale"
	KindRent ListingKind = "rent"
	KindPlan ListingKind = "plan"
)

// ListingStatus tracks the review lifecycle of a listing.
type ListingStatus string

const (
	StatusPending ListingStatus = "pending"
	StatusActive  ListingStatus = "active"
)

// PropertyDetails holds attributes that only exist on sale and rent listings.
type PropertyDetails struct {
	Bedrooms  int      `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int      `bson:"bathrooms" json:"bathrooms"`
	Parking   int      `bson:"parking" json:"parking"`
	AreaSqFt  int      `bson:"areaSqFt" json:"areaSqFt"`
	Features  []string `bson:"features,omitempty" json:"features,omitempty"`
}

// PlanDetails holds attributes that only exist on architectural plan listings.
type PlanDetails struct {
	Format string `bson:"format" json:"format"`
}

// Listing is a property-for-sale, property-for-rent, or architectural plan
// record. The two price fields are independent stored values in their own
// currencies; neither is derived from the other.
type Listing struct {
	ID          int64         `bson:"id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Location    string        `bson:"location" json:"location"`
	PriceUGX    int64         `bson:"priceUgx" json:"priceUgx"`
	PriceUSD    int64         `bson:"priceUsd" json:"priceUsd"`
	Kind        ListingKind   `bson:"kind" json:"kind"`
	Category    string        `bson:"category" json:"category"`
	Description string        `bson:"description" json:"description"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	Agent       string        `bson:"agent" json:"agent"`
	Featured    bool          `bson:"featured" json:"featured"`
	Trending    bool          `bson:"trending" json:"trending"`
	Verified    bool          `bson:"verified" json:"verified"`
	Likes       int           `bson:"likes" json:"likes"`
	Views       int           `bson:"views" json:"views"`
	Status      ListingStatus `bson:"status" json:"status"`

	// Exactly one of Property or Plan is set, matching Kind.
	Property *PropertyDetails `bson:"property,omitempty" json:"property,omitempty"`
	Plan     *PlanDetails     `bson:"plan,omitempty" json:"plan,omitempty"`

	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Validate enforces the kind/shape invariant: plan listings carry PlanDetails
// and never PropertyDetails; sale and rent listings carry PropertyDetails and
// never PlanDetails.
func (l *Listing) Validate() error {
	switch l.Kind {
	case KindSale, KindRent:
		if l.Plan != nil {
			return fmt.Errorf("listing of kind %q must not carry plan details", l.Kind)
		}
		if l.Property == nil {
			return fmt.Errorf("listing of kind %q requires property details", l.Kind)
		}
	case KindPlan:
		if l.Property != nil {
			return fmt.Errorf("plan listing must not carry property details")
		}
		if l.Plan == nil {
			return fmt.Errorf("plan listing requires plan details")
		}
	default:
		return fmt.Errorf("unknown listing kind %q", l.Kind)
	}
	return nil
}

// PriceIn returns the stored price field matching the given currency.
func (l *Listing) PriceIn(cur Currency) int64 {
	if cur == CurrencyUSD {
		return l.PriceUSD
	}
	return l.PriceUGX
}
