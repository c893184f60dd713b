package model

import "strings"

// CustomPlanPrefix marks a diet order's package reference as pointing at a
// custom plan instead of the formal package catalog.
const CustomPlanPrefix = "custom-"

// CustomPlan is an ad hoc diet-package-like entity with its own meal-slot
// structure and a pre-computed amount.
//
// @Description Ad hoc diet plan outside the formal package catalog
type CustomPlan struct {
	ID          string                `bson:"_id" json:"id"`
	PackageName string                `bson:"packageName" json:"packageName"`
	DietType    string                `bson:"dietType,omitempty" json:"dietType,omitempty"`
	Meals       map[string][]MealItem `bson:"meals" json:"meals"`
	Amount      float64               `bson:"amount" json:"amount"`
}

// AllMealItems flattens every meal slot of the plan, in serving order.
func (p *CustomPlan) AllMealItems() []MealItem {
	var all []MealItem
	for _, slot := range MealSlots() {
		all = append(all, p.Meals[string(slot)]...)
	}
	return all
}

// IsCustomPlanRef reports whether a package reference points at a custom
// plan, returning the bare plan id.
func IsCustomPlanRef(ref string) (string, bool) {
	if strings.HasPrefix(ref, CustomPlanPrefix) {
		return strings.TrimPrefix(ref, CustomPlanPrefix), true
	}
	return ref, false
}
