package wizard

import (
	"testing"

	"estateconnect/models"
	"estateconnect/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-process SessionStore for tests.
type memStore struct {
	sessions map[string]models.WizardSession
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]models.WizardSession)}
}

func (m *memStore) Save(session *models.WizardSession) error {
	m.sessions[session.ID] = *session
	return nil
}

func (m *memStore) Get(sessionID string) (*models.WizardSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := s
	return &out, nil
}

func (m *memStore) Touch(sessionID string) error {
	if _, ok := m.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (m *memStore) Delete(sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// stubCatalog records created listings and assigns sequence IDs.
type stubCatalog struct {
	created []*models.Listing
	nextID  int64
}

func (s *stubCatalog) Search(models.SearchCriteria) (*catalog.SearchResult, error) { return nil, nil }
func (s *stubCatalog) GetByID(int64) (*models.Listing, error)                      { return nil, nil }
func (s *stubCatalog) GetByCreator(string) ([]models.Listing, error)               { return nil, nil }
func (s *stubCatalog) ApproveListing(int64) error                                  { return nil }
func (s *stubCatalog) Stats() (map[models.ListingKind]int64, int64, error)         { return nil, 0, nil }

func (s *stubCatalog) CreateListing(listing *models.Listing) error {
	if err := listing.Validate(); err != nil {
		return err
	}
	s.nextID++
	listing.ID = s.nextID
	s.created = append(s.created, listing)
	return nil
}

func newTestService() (*DefaultWizardService, *stubCatalog) {
	cat := &stubCatalog{}
	svc := &DefaultWizardService{
		Catalog: cat,
		Store:   newMemStore(),
	}
	return svc, cat
}

func kindPtr(k models.ListingKind) *models.ListingKind { return &k }
func strPtr(s string) *string                          { return &s }
func boolPtr(b bool) *bool                             { return &b }

func TestStartOpensAtStepOne(t *testing.T) {
	svc, _ := newTestService()

	session, err := svc.Start("user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.FirstStep, session.Step)
	assert.Empty(t, session.Kind)
	assert.Equal(t, models.CurrencyUGX, session.Pricing.Currency)
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	_, err = svc.Get("someone-else", session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNavigationBounds(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		session, err = svc.Next("user-1", session.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, models.StepReview, session.Step, "next never passes the review step")

	for i := 0; i < 9; i++ {
		session, err = svc.Previous("user-1", session.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, models.FirstStep, session.Step, "previous never passes step 1")
}

func TestUpdateKindChangeClearsForeignCategory(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	session, err = svc.Update("user-1", session.ID, UpdateRequest{
		Kind:     kindPtr(models.KindSale),
		Category: strPtr("house"),
	})
	require.NoError(t, err)
	assert.Equal(t, "house", session.Category)

	// Switching to plan discards the property category.
	session, err = svc.Update("user-1", session.ID, UpdateRequest{
		Kind: kindPtr(models.KindPlan),
	})
	require.NoError(t, err)
	assert.Empty(t, session.Category)
}

func TestUpdateRejectsForeignCategory(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	_, err = svc.Update("user-1", session.ID, UpdateRequest{
		Kind:     kindPtr(models.KindPlan),
		Category: strPtr("house"),
	})
	assert.Error(t, err)

	// The failed update leaves the stored session untouched.
	session, err = svc.Get("user-1", session.ID)
	require.NoError(t, err)
	assert.Empty(t, session.Category)
}

func TestUpdateRejectsNegativeAmounts(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	_, err = svc.Update("user-1", session.ID, UpdateRequest{
		Pricing: &models.PricingInfo{Amount: -1_000, Currency: models.CurrencyUGX},
	})
	assert.Error(t, err)

	_, err = svc.Update("user-1", session.ID, UpdateRequest{
		Pricing: &models.PricingInfo{Amount: 1_000, DepositAmount: -500},
	})
	assert.Error(t, err)

	// The failed updates leave the stored session untouched.
	session, err = svc.Get("user-1", session.ID)
	require.NoError(t, err)
	assert.Zero(t, session.Pricing.Amount)
}

func TestPublishRequiresReviewStep(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	_, err = svc.Publish("user-1", session.ID)
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestPublishBuildsPendingListing(t *testing.T) {
	svc, cat := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	_, err = svc.Update("user-1", session.ID, UpdateRequest{
		Kind:     kindPtr(models.KindRent),
		Category: strPtr("apartment"),
		Basic: &models.BasicDetails{
			Title: "City Apartment", Bedrooms: 2, Bathrooms: 1,
			Features: []string{"Furnished"},
		},
		Location: &models.LocationInfo{Country: "Uganda", City: "Kampala"},
		Pricing: &models.PricingInfo{
			Amount: 2_500_000, Currency: models.CurrencyUGX,
			DepositRequired: true, DepositAmount: 5_000_000,
		},
		TermsAccepted: boolPtr(true),
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = svc.Next("user-1", session.ID)
		require.NoError(t, err)
	}

	id, err := svc.Publish("user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, cat.created, 1)
	created := cat.created[0]
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, models.KindRent, created.Kind)
	assert.Equal(t, "Kampala, Uganda", created.Location)
	assert.Equal(t, int64(2_500_000), created.PriceUGX)
	assert.Zero(t, created.PriceUSD, "the sibling price field is never derived")
	assert.Equal(t, "user-1", created.CreatedBy)
	require.NotNil(t, created.Property)
	assert.Nil(t, created.Plan)

	// The session is discarded after publishing.
	_, err = svc.Get("user-1", session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPublishPlanListingShape(t *testing.T) {
	svc, cat := newTestService()
	session, err := svc.Start("user-2")
	require.NoError(t, err)

	_, err = svc.Update("user-2", session.ID, UpdateRequest{
		Kind:     kindPtr(models.KindPlan),
		Category: strPtr("residential"),
		Basic:    &models.BasicDetails{Title: "Bungalow Plan", Format: "PDF + CAD"},
		Pricing:  &models.PricingInfo{Amount: 320, Currency: models.CurrencyUSD},
		Location: &models.LocationInfo{Country: "Uganda", City: "Kampala"},
		TermsAccepted: boolPtr(true),
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = svc.Next("user-2", session.ID)
		require.NoError(t, err)
	}

	_, err = svc.Publish("user-2", session.ID)
	require.NoError(t, err)

	require.Len(t, cat.created, 1)
	created := cat.created[0]
	require.NotNil(t, created.Plan)
	assert.Nil(t, created.Property)
	assert.Equal(t, "PDF + CAD", created.Plan.Format)
	assert.Equal(t, int64(320), created.PriceUSD)
	assert.Zero(t, created.PriceUGX)
}

func TestPublishRequiresTerms(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	_, err = svc.Update("user-1", session.ID, UpdateRequest{
		Kind: kindPtr(models.KindSale),
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = svc.Next("user-1", session.ID)
		require.NoError(t, err)
	}

	_, err = svc.Publish("user-1", session.ID)
	assert.ErrorContains(t, err, "terms")
}

func TestFeePreviewRequiresKind(t *testing.T) {
	svc, _ := newTestService()
	session, err := svc.Start("user-1")
	require.NoError(t, err)

	_, err = svc.FeePreview("user-1", session.ID)
	assert.Error(t, err)

	_, err = svc.Update("user-1", session.ID, UpdateRequest{
		Kind:    kindPtr(models.KindSale),
		Pricing: &models.PricingInfo{Amount: 100_000_000, Currency: models.CurrencyUGX},
	})
	require.NoError(t, err)

	quote, err := svc.FeePreview("user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2_500_000), quote.Amount)
}
