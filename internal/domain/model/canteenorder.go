package model

// CanteenStatus tracks the kitchen workflow of a canteen order.
// The prep progression pending → active → prepared → delivered is linear and
// forward-only; paused and stopped are inherited from the diet order side.
type CanteenStatus string

const (
	CanteenPending   CanteenStatus = "pending"
	CanteenActive    CanteenStatus = "active"
	CanteenPaused    CanteenStatus = "paused"
	CanteenStopped   CanteenStatus = "stopped"
	CanteenPrepared  CanteenStatus = "prepared"
	CanteenDelivered CanteenStatus = "delivered"
)

// kitchenNext maps each prep state to its sole successor. A transition is
// permitted only from the exact predecessor state.
var kitchenNext = map[CanteenStatus]CanteenStatus{
	CanteenPending:  CanteenActive,
	CanteenActive:   CanteenPrepared,
	CanteenPrepared: CanteenDelivered,
}

// CanTransition reports whether the kitchen status may move to the target.
func (s CanteenStatus) CanTransition(to CanteenStatus) bool {
	return kitchenNext[s] == to
}

// CanteenOrder is the kitchen-facing projection of an approved diet order.
// It shares the diet order's id and is a one-way snapshot taken at approval
// time: later package edits do not propagate, and deleting the diet order
// does not cascade here.
//
// @Description Kitchen projection of an approved diet order
type CanteenOrder struct {
	ID                    string                `bson:"_id" json:"id"`
	PatientName           string                `bson:"patientName" json:"patientName"`
	Bed                   string                `bson:"bed,omitempty" json:"bed,omitempty"`
	Ward                  string                `bson:"ward,omitempty" json:"ward,omitempty"`
	DietPackageName       string                `bson:"dietPackageName" json:"dietPackageName"`
	DietType              string                `bson:"dietType,omitempty" json:"dietType,omitempty"`
	FoodItems             []string              `bson:"foodItems" json:"foodItems"`
	SpecialNotes          string                `bson:"specialNotes,omitempty" json:"specialNotes,omitempty"`
	Status                CanteenStatus         `bson:"status" json:"status"`
	Prepared              bool                  `bson:"prepared" json:"prepared"`
	Delivered             bool                  `bson:"delivered" json:"delivered"`
	DieticianInstructions string                `bson:"dieticianInstructions,omitempty" json:"dieticianInstructions,omitempty"`
	MealItems             map[string][]MealItem `bson:"mealItems,omitempty" json:"mealItems,omitempty"`
}

// QuantityUnit is an aggregated quantity for one distinct item name.
type QuantityUnit struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}
