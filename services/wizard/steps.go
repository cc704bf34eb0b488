// File: services/wizard/steps.go
package wizard

import "estateconnect/models"

// FieldGroup names a block of form controls whose visibility depends on the
// selected listing kind.
type FieldGroup string

const (
	GroupListingKind      FieldGroup = "listing-kind"
	GroupPropertyCategory FieldGroup = "property-category"
	GroupPlanCategory     FieldGroup = "plan-category"
	GroupTitleArea        FieldGroup = "title-area"
	GroupRooms            FieldGroup = "rooms" // bedrooms, bathrooms, parking
	GroupFeatures         FieldGroup = "features"
	GroupDescription      FieldGroup = "description"
	GroupPlanFormat       FieldGroup = "plan-format"
	GroupLocation         FieldGroup = "location"
	GroupMedia            FieldGroup = "media"
	GroupPrice            FieldGroup = "price"
	GroupDeposit          FieldGroup = "deposit" // rent only
	GroupReview           FieldGroup = "review"
)

// PropertyCategories populate the step-1 category selector for sale and rent
// listings.
var PropertyCategories = []string{"land", "house", "apartment", "condo", "commercial"}

// PlanCategories populate the step-1 category selector for plan listings.
var PlanCategories = []string{"residential", "commercial", "industrial", "infrastructure", "landscape"}

// CategoryOptions returns the fixed, kind-scoped category enumeration for the
// selected kind.
func CategoryOptions(kind models.ListingKind) []string {
	if kind == models.KindPlan {
		return PlanCategories
	}
	return PropertyCategories
}

// VisibleFieldGroups returns the form blocks rendered at a step for the
// selected kind. Plan listings never show the rooms or features blocks, and
// only rent listings show the deposit sub-form at the pricing step.
func VisibleFieldGroups(step int, kind models.ListingKind) []FieldGroup {
	switch step {
	case models.StepPropertyType:
		groups := []FieldGroup{GroupListingKind}
		switch kind {
		case models.KindPlan:
			groups = append(groups, GroupPlanCategory)
		case models.KindSale, models.KindRent:
			groups = append(groups, GroupPropertyCategory)
		}
		return groups
	case models.StepBasicDetails:
		groups := []FieldGroup{GroupTitleArea, GroupDescription}
		if kind == models.KindPlan {
			groups = append(groups, GroupPlanFormat)
		} else {
			groups = append(groups, GroupRooms, GroupFeatures)
		}
		return groups
	case models.StepLocation:
		return []FieldGroup{GroupLocation}
	case models.StepMedia:
		return []FieldGroup{GroupMedia}
	case models.StepPricing:
		groups := []FieldGroup{GroupPrice}
		if kind == models.KindRent {
			groups = append(groups, GroupDeposit)
		}
		return groups
	case models.StepReview:
		return []FieldGroup{GroupReview}
	}
	return nil
}
