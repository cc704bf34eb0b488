// File: models/wizard.go
package models

import "time"

// Wizard step indices. The submission flow is a fixed linear sequence.
const (
	StepPropertyType = 1
	StepBasicDetails = 2
	StepLocation     = 3
	StepMedia        = 4
	StepPricing      = 5
	StepReview       = 6

	FirstStep = StepPropertyType
	LastStep  = StepReview
)

// WizardStep describes one step of the submission flow for display.
type WizardStep struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WizardSteps is the fixed six-step sequence.
var WizardSteps = []WizardStep{
	{StepPropertyType, "Property Type", "Choose what you're listing"},
	{StepBasicDetails, "Basic Details", "Property information"},
	{StepLocation, "Location", "Where is it located"},
	{StepMedia, "Media & Files", "Photos and documents"},
	{StepPricing, "Pricing", "Set your price"},
	{StepReview, "Review", "Review and publish"},
}

// BasicDetails is the step-2 payload. The bedroom/bathroom/parking/features
// group only applies to sale and rent listings.
type BasicDetails struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AreaSqFt    int      `json:"areaSqFt"`
	Bedrooms    int      `json:"bedrooms,omitempty"`
	Bathrooms   int      `json:"bathrooms,omitempty"`
	Parking     int      `json:"parking,omitempty"`
	Features    []string `json:"features,omitempty"`
	Format      string   `json:"format,omitempty"` // plan listings only
}

// LocationInfo is the step-3 payload.
type LocationInfo struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
	Privacy string `json:"privacy"` // exact, approximate, hidden
}

// PricingInfo is the step-5 payload. The deposit sub-form applies to rent
// listings only.
type PricingInfo struct {
	Amount          int64    `json:"amount"`
	Currency        Currency `json:"currency"`
	DepositRequired bool     `json:"depositRequired,omitempty"`
	DepositAmount   int64    `json:"depositAmount,omitempty"`
	LeaseTermMonths int      `json:"leaseTermMonths,omitempty"`
}

// WizardSession is the accumulated state of one submission flow. Lifetime is
// one submission session; drafts persist only for the store TTL.
type WizardSession struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	Step          int          `json:"step"`
	Kind          ListingKind  `json:"kind,omitempty"`
	Category      string       `json:"category,omitempty"`
	Basic         BasicDetails `json:"basic"`
	Location      LocationInfo `json:"location"`
	Files         []string     `json:"files,omitempty"`
	Pricing       PricingInfo  `json:"pricing"`
	TermsAccepted bool         `json:"termsAccepted"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}
