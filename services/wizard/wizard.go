// File: services/wizard/wizard.go
package wizard

import (
	"fmt"
	"time"

	"estateconnect/models"
	"estateconnect/services/tasks"
	"estateconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Advance moves forward one step, capped at the review step. There are no
// guard conditions: a session may advance with empty fields.
func Advance(step int) int {
	if step < models.LastStep {
		return step + 1
	}
	return models.LastStep
}

// Retreat moves back one step; a no-op at step 1.
func Retreat(step int) int {
	if step > models.FirstStep {
		return step - 1
	}
	return models.FirstStep
}

// Start opens a fresh session at step 1 with no kind selected.
func (s *DefaultWizardService) Start(userID string) (*models.WizardSession, error) {
	session := &models.WizardSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Step:      models.FirstStep,
		CreatedAt: time.Now(),
	}
	session.Pricing.Currency = models.CurrencyUGX
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get fetches a session and verifies ownership.
func (s *DefaultWizardService) Get(userID, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Next advances one step, capped at the review step.
func (s *DefaultWizardService) Next(userID, sessionID string) (*models.WizardSession, error) {
	session, err := s.Get(userID, sessionID)
	if err != nil {
		return nil, err
	}
	session.Step = Advance(session.Step)
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Previous retreats one step; a no-op at step 1.
func (s *DefaultWizardService) Previous(userID, sessionID string) (*models.WizardSession, error) {
	session, err := s.Get(userID, sessionID)
	if err != nil {
		return nil, err
	}
	session.Step = Retreat(session.Step)
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update merges submitted field values into the session. Selecting a kind
// clears a category that belongs to the other kind's enumeration.
func (s *DefaultWizardService) Update(userID, sessionID string, req UpdateRequest) (*models.WizardSession, error) {
	session, err := s.Get(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Kind != nil {
		switch *req.Kind {
		case models.KindSale, models.KindRent, models.KindPlan:
			if session.Kind != *req.Kind {
				session.Category = ""
			}
			session.Kind = *req.Kind
		default:
			return nil, fmt.Errorf("unknown listing kind %q", *req.Kind)
		}
	}
	if req.Category != nil {
		if !validCategory(session.Kind, *req.Category) {
			return nil, fmt.Errorf("category %q is not valid for kind %q", *req.Category, session.Kind)
		}
		session.Category = *req.Category
	}
	if req.Basic != nil {
		session.Basic = *req.Basic
	}
	if req.Location != nil {
		session.Location = *req.Location
	}
	if req.Files != nil {
		session.Files = req.Files
	}
	if req.Pricing != nil {
		if req.Pricing.Amount < 0 || req.Pricing.DepositAmount < 0 {
			return nil, fmt.Errorf("price amounts must not be negative")
		}
		session.Pricing = *req.Pricing
		if session.Pricing.Currency != models.CurrencyUSD {
			session.Pricing.Currency = models.CurrencyUGX
		}
	}
	if req.TermsAccepted != nil {
		session.TermsAccepted = *req.TermsAccepted
	}

	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func validCategory(kind models.ListingKind, category string) bool {
	for _, c := range CategoryOptions(kind) {
		if c == category {
			return true
		}
	}
	return false
}

// SaveDraft extends the session's lifetime without changing it.
func (s *DefaultWizardService) SaveDraft(userID, sessionID string) error {
	if _, err := s.Get(userID, sessionID); err != nil {
		return err
	}
	return s.Store.Touch(sessionID)
}

// FeePreview computes the listing fee for the session's kind and currency.
func (s *DefaultWizardService) FeePreview(userID, sessionID string) (*FeeQuote, error) {
	session, err := s.Get(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Kind == "" {
		return nil, fmt.Errorf("select a listing kind before requesting a fee preview")
	}
	quote := QuoteFee(session.Kind, session.Pricing.Currency, session.Pricing.Amount)
	return &quote, nil
}

// Publish builds a listing from the accumulated session fields, persists it
// in pending status, enqueues the review task, and discards the session.
func (s *DefaultWizardService) Publish(userID, sessionID string) (int64, error) {
	session, err := s.Get(userID, sessionID)
	if err != nil {
		return 0, err
	}
	if session.Step != models.StepReview {
		return 0, ErrNotAtReview
	}
	if session.Kind == "" {
		return 0, fmt.Errorf("listing kind is required")
	}
	if !session.TermsAccepted {
		return 0, fmt.Errorf("terms of service must be accepted before publishing")
	}

	listing := buildListing(session)
	if err := s.Catalog.CreateListing(listing); err != nil {
		return 0, err
	}

	if s.Queue != nil {
		task, opts, err := tasks.NewReviewTask(models.ReviewPayload{ListingID: listing.ID})
		if err != nil {
			utils.GetLogger().Error("Publish: failed to build review task", zap.Error(err))
		} else if _, err := s.Queue.Enqueue(task, opts...); err != nil {
			utils.GetLogger().Error("Publish: failed to enqueue review task",
				zap.Int64("listingId", listing.ID), zap.Error(err))
		}
	}

	if err := s.Store.Delete(sessionID); err != nil {
		utils.GetLogger().Warn("Publish: failed to discard session", zap.Error(err))
	}
	return listing.ID, nil
}

// buildListing maps wizard state onto a listing record. The entered price
// fills the field of the selected currency; the sibling field stays zero
// because the two are independent stored values.
func buildListing(session *models.WizardSession) *models.Listing {
	listing := &models.Listing{
		Title:       session.Basic.Title,
		Location:    fmt.Sprintf("%s, %s", session.Location.City, session.Location.Country),
		Kind:        session.Kind,
		Category:    session.Category,
		Description: session.Basic.Description,
		Status:      models.StatusPending,
		CreatedBy:   session.UserID,
	}
	if session.Pricing.Currency == models.CurrencyUSD {
		listing.PriceUSD = session.Pricing.Amount
	} else {
		listing.PriceUGX = session.Pricing.Amount
	}
	if session.Kind == models.KindPlan {
		listing.Plan = &models.PlanDetails{Format: session.Basic.Format}
	} else {
		listing.Property = &models.PropertyDetails{
			Bedrooms:  session.Basic.Bedrooms,
			Bathrooms: session.Basic.Bathrooms,
			Parking:   session.Basic.Parking,
			AreaSqFt:  session.Basic.AreaSqFt,
			Features:  session.Basic.Features,
		}
	}
	return listing
}
