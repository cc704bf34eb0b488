package wizard

import (
	"errors"

	"estateconnect/models"
	"estateconnect/services/catalog"

	"github.com/hibiken/asynq"
)

// ErrSessionNotFound is returned when a wizard session has expired or never
// existed.
var ErrSessionNotFound = errors.New("wizard session not found")

// ErrNotAtReview is returned when publish is attempted before the review step.
var ErrNotAtReview = errors.New("publish is only available at the review step")

// WizardService drives the six-step listing submission flow.
type WizardService interface {
	// Start opens a fresh session at step 1 with no kind selected.
	Start(userID string) (*models.WizardSession, error)
	// Get fetches a session owned by the user.
	Get(userID, sessionID string) (*models.WizardSession, error)
	// Next advances one step, capped at the review step.
	Next(userID, sessionID string) (*models.WizardSession, error)
	// Previous retreats one step; a no-op at step 1.
	Previous(userID, sessionID string) (*models.WizardSession, error)
	// Update merges submitted field values into the session.
	Update(userID, sessionID string, req UpdateRequest) (*models.WizardSession, error)
	// SaveDraft extends the session's lifetime without changing it.
	SaveDraft(userID, sessionID string) error
	// FeePreview computes the listing fee for the session's kind and currency.
	FeePreview(userID, sessionID string) (*FeeQuote, error)
	// Publish builds a listing from the session, persists it pending review,
	// enqueues the review task, and discards the session.
	Publish(userID, sessionID string) (int64, error)
}

// UpdateRequest carries partial wizard state from the client. Nil fields are
// left untouched.
type UpdateRequest struct {
	Kind          *models.ListingKind  `json:"kind,omitempty"`
	Category      *string              `json:"category,omitempty"`
	Basic         *models.BasicDetails `json:"basic,omitempty"`
	Location      *models.LocationInfo `json:"location,omitempty"`
	Files         []string             `json:"files,omitempty"`
	Pricing       *models.PricingInfo  `json:"pricing,omitempty"`
	TermsAccepted *bool                `json:"termsAccepted,omitempty"`
}

// DefaultWizardService is the production implementation.
type DefaultWizardService struct {
	Catalog catalog.CatalogService
	Store   SessionStore
	Queue   *asynq.Client
}
