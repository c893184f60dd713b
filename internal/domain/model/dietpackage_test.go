package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/diet-service/internal/domain/model"
)

func TestMealItem_Display(t *testing.T) {
	item := model.MealItem{FoodItemName: "Rice", Quantity: 2, Unit: "Kilogram"}
	assert.Equal(t, "Rice - 2 Kilogram", item.Display())

	fractional := model.MealItem{FoodItemName: "Milk", Quantity: 1.5, Unit: "Litre"}
	assert.Equal(t, "Milk - 1.5 Litre", fractional.Display())
}

func TestDietPackage_AllMealItems_Order(t *testing.T) {
	pkg := model.DietPackage{
		Breakfast: []model.MealItem{{FoodItemName: "Oats"}},
		Brunch:    []model.MealItem{{FoodItemName: "Juice"}},
		Lunch:     []model.MealItem{{FoodItemName: "Rice"}},
		Evening:   []model.MealItem{{FoodItemName: "Tea"}},
		Dinner:    []model.MealItem{{FoodItemName: "Soup"}},
	}

	all := pkg.AllMealItems()
	names := make([]string, 0, len(all))
	for _, item := range all {
		names = append(names, item.FoodItemName)
	}

	assert.Equal(t, []string{"Oats", "Juice", "Rice", "Tea", "Soup"}, names)
}

func TestDietPackage_Slot(t *testing.T) {
	pkg := model.DietPackage{Lunch: []model.MealItem{{FoodItemName: "Rice"}}}

	assert.Len(t, pkg.Slot(model.SlotLunch), 1)
	assert.Empty(t, pkg.Slot(model.SlotDinner))
	assert.Nil(t, pkg.Slot(model.MealSlot("supper")))
}

func TestParseMealSlot(t *testing.T) {
	for _, slot := range model.MealSlots() {
		parsed, ok := model.ParseMealSlot(string(slot))
		assert.True(t, ok)
		assert.Equal(t, slot, parsed)
	}

	_, ok := model.ParseMealSlot("supper")
	assert.False(t, ok)
}

func TestIsCustomPlanRef(t *testing.T) {
	id, ok := model.IsCustomPlanRef("custom-42")
	assert.True(t, ok)
	assert.Equal(t, "42", id)

	id, ok = model.IsCustomPlanRef("42")
	assert.False(t, ok)
	assert.Equal(t, "42", id)
}

func TestNutrition_Add(t *testing.T) {
	var total model.Nutrition
	total.Add(model.Nutrition{Calories: 130, Protein: 2.7, Carbohydrates: 28, Fat: 0.3}, 2)

	assert.Equal(t, 260.0, total.Calories)
	assert.Equal(t, 5.4, total.Protein)
	assert.Equal(t, 56.0, total.Carbohydrates)
	assert.Equal(t, 0.6, total.Fat)
}
