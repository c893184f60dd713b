package model

import (
	"fmt"
	"strconv"
)

// MealSlot identifies one of the five meal groupings within a package.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotBrunch    MealSlot = "brunch"
	SlotLunch     MealSlot = "lunch"
	SlotEvening   MealSlot = "evening"
	SlotDinner    MealSlot = "dinner"
)

// MealSlots lists the slots in serving order.
func MealSlots() []MealSlot {
	return []MealSlot{SlotBreakfast, SlotBrunch, SlotLunch, SlotEvening, SlotDinner}
}

// ParseMealSlot validates a meal slot name.
func ParseMealSlot(s string) (MealSlot, bool) {
	switch MealSlot(s) {
	case SlotBreakfast, SlotBrunch, SlotLunch, SlotEvening, SlotDinner:
		return MealSlot(s), true
	}
	return "", false
}

// MealItem is one package line: a weak reference to a catalog item plus a
// denormalized display snapshot. The snapshot may go stale after catalog
// edits; refreshing it is a deliberate, separate operation from following
// the reference.
type MealItem struct {
	FoodItemID   string  `bson:"foodItemId" json:"foodItemId"`
	FoodItemName string  `bson:"foodItemName" json:"foodItemName"`
	Quantity     float64 `bson:"quantity" json:"quantity"`
	Unit         string  `bson:"unit" json:"unit"`
	Time         string  `bson:"time,omitempty" json:"time,omitempty"`
	Period       string  `bson:"period,omitempty" json:"period,omitempty"`
}

// Display renders the kitchen-facing "<name> - <quantity> <unit>" string.
func (m MealItem) Display() string {
	return fmt.Sprintf("%s - %s %s", m.FoodItemName, strconv.FormatFloat(m.Quantity, 'f', -1, 64), m.Unit)
}

// Nutrition is an accumulated nutrition total.
type Nutrition struct {
	Calories      float64 `bson:"calories" json:"calories"`
	Protein       float64 `bson:"protein" json:"protein"`
	Carbohydrates float64 `bson:"carbohydrates" json:"carbohydrates"`
	Fat           float64 `bson:"fat" json:"fat"`
}

// Add accumulates the given nutrition scaled by quantity.
func (n *Nutrition) Add(other Nutrition, quantity float64) {
	n.Calories += other.Calories * quantity
	n.Protein += other.Protein * quantity
	n.Carbohydrates += other.Carbohydrates * quantity
	n.Fat += other.Fat * quantity
}

// DietPackage is a named bundle of per-meal-slot food items with derived
// cost and nutrition totals. TotalRate and TotalNutrition are recomputed on
// every edit by summing over the current meal items; they are never
// incrementally maintained.
//
// @Description Diet package with five meal slots and derived totals
type DietPackage struct {
	ID             string     `bson:"_id" json:"id"`
	Name           string     `bson:"name" json:"name" example:"Diabetic Diet"`
	Type           string     `bson:"type" json:"type" example:"Veg"`
	Breakfast      []MealItem `bson:"breakfast" json:"breakfast"`
	Brunch         []MealItem `bson:"brunch" json:"brunch"`
	Lunch          []MealItem `bson:"lunch" json:"lunch"`
	Evening        []MealItem `bson:"evening" json:"evening"`
	Dinner         []MealItem `bson:"dinner" json:"dinner"`
	TotalRate      float64    `bson:"totalRate" json:"totalRate"`
	TotalNutrition Nutrition  `bson:"totalNutrition" json:"totalNutrition"`
}

// Slot returns the meal items for the given slot.
func (p *DietPackage) Slot(slot MealSlot) []MealItem {
	switch slot {
	case SlotBreakfast:
		return p.Breakfast
	case SlotBrunch:
		return p.Brunch
	case SlotLunch:
		return p.Lunch
	case SlotEvening:
		return p.Evening
	case SlotDinner:
		return p.Dinner
	}
	return nil
}

// SetSlot replaces the meal items for the given slot.
func (p *DietPackage) SetSlot(slot MealSlot, items []MealItem) {
	switch slot {
	case SlotBreakfast:
		p.Breakfast = items
	case SlotBrunch:
		p.Brunch = items
	case SlotLunch:
		p.Lunch = items
	case SlotEvening:
		p.Evening = items
	case SlotDinner:
		p.Dinner = items
	}
}

// AllMealItems concatenates every slot into one sequence, in serving order.
func (p *DietPackage) AllMealItems() []MealItem {
	all := make([]MealItem, 0, len(p.Breakfast)+len(p.Brunch)+len(p.Lunch)+len(p.Evening)+len(p.Dinner))
	for _, slot := range MealSlots() {
		all = append(all, p.Slot(slot)...)
	}
	return all
}

// DisplayItems renders every meal line as a kitchen display string.
func (p *DietPackage) DisplayItems() []string {
	items := p.AllMealItems()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Display())
	}
	return out
}
