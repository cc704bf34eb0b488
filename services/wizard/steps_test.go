package wizard

import (
	"testing"

	"estateconnect/models"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceCapsAtReview(t *testing.T) {
	step := models.FirstStep
	for i := 0; i < 5; i++ {
		step = Advance(step)
	}
	assert.Equal(t, models.StepReview, step)

	// Further advances are no-ops.
	assert.Equal(t, models.StepReview, Advance(step))
}

func TestRetreatStopsAtFirstStep(t *testing.T) {
	step := models.StepReview
	for i := 0; i < 5; i++ {
		step = Retreat(step)
	}
	assert.Equal(t, models.FirstStep, step)

	assert.Equal(t, models.FirstStep, Retreat(step))
}

func TestCategoryOptions(t *testing.T) {
	assert.Equal(t, PropertyCategories, CategoryOptions(models.KindSale))
	assert.Equal(t, PropertyCategories, CategoryOptions(models.KindRent))
	assert.Equal(t, PlanCategories, CategoryOptions(models.KindPlan))

	// The two enumerations are disjoint.
	for _, p := range PropertyCategories {
		if p == "commercial" {
			continue // the one shared label
		}
		assert.NotContains(t, PlanCategories, p)
	}
}

func TestVisibleFieldGroups(t *testing.T) {
	tests := []struct {
		name string
		step int
		kind models.ListingKind
		want []FieldGroup
	}{
		{
			name: "step 1 before a kind is chosen",
			step: models.StepPropertyType,
			want: []FieldGroup{GroupListingKind},
		},
		{
			name: "step 1 for a plan shows the plan categories",
			step: models.StepPropertyType,
			kind: models.KindPlan,
			want: []FieldGroup{GroupListingKind, GroupPlanCategory},
		},
		{
			name: "step 2 for a sale shows rooms and features",
			step: models.StepBasicDetails,
			kind: models.KindSale,
			want: []FieldGroup{GroupTitleArea, GroupDescription, GroupRooms, GroupFeatures},
		},
		{
			name: "step 2 for a plan hides rooms and features",
			step: models.StepBasicDetails,
			kind: models.KindPlan,
			want: []FieldGroup{GroupTitleArea, GroupDescription, GroupPlanFormat},
		},
		{
			name: "step 5 for a rent adds the deposit block",
			step: models.StepPricing,
			kind: models.KindRent,
			want: []FieldGroup{GroupPrice, GroupDeposit},
		},
		{
			name: "step 5 for a sale has no deposit block",
			step: models.StepPricing,
			kind: models.KindSale,
			want: []FieldGroup{GroupPrice},
		},
		{
			name: "review step",
			step: models.StepReview,
			kind: models.KindPlan,
			want: []FieldGroup{GroupReview},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleFieldGroups(tt.step, tt.kind))
		})
	}
}
