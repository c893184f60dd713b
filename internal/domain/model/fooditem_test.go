package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/diet-service/internal/domain/model"
)

func TestFoodItem_DerivePricePerUnit(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		price    string
		expected string
	}{
		{
			name:     "price 100 quantity 4",
			quantity: "4",
			price:    "100",
			expected: "25.00",
		},
		{
			name:     "fractional result",
			quantity: "3",
			price:    "100",
			expected: "33.33",
		},
		{
			name:     "zero quantity",
			quantity: "0",
			price:    "100",
			expected: "",
		},
		{
			name:     "negative quantity",
			quantity: "-2",
			price:    "100",
			expected: "",
		},
		{
			name:     "non-numeric quantity",
			quantity: "four",
			price:    "100",
			expected: "",
		},
		{
			name:     "non-numeric price",
			quantity: "4",
			price:    "cheap",
			expected: "",
		},
		{
			name:     "empty quantity",
			quantity: "",
			price:    "100",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.FoodItem{Quantity: tt.quantity, Price: tt.price}
			item.DerivePricePerUnit()
			assert.Equal(t, tt.expected, item.PricePerUnit)
		})
	}
}

func TestFoodItem_NutritionValues(t *testing.T) {
	item := model.FoodItem{Calories: "130", Protein: "2.7", Carbohydrates: "28", Fat: "0.3"}
	n := item.NutritionValues()

	assert.Equal(t, 130.0, n.Calories)
	assert.Equal(t, 2.7, n.Protein)
	assert.Equal(t, 28.0, n.Carbohydrates)
	assert.Equal(t, 0.3, n.Fat)
}

func TestFoodItem_NutritionValues_NonNumeric(t *testing.T) {
	item := model.FoodItem{Calories: "lots", Protein: ""}
	n := item.NutritionValues()

	assert.Zero(t, n.Calories)
	assert.Zero(t, n.Protein)
}

func TestFoodItem_PriceValue(t *testing.T) {
	assert.Equal(t, 100.0, model.FoodItem{Price: "100"}.PriceValue())
	assert.Zero(t, model.FoodItem{Price: "n/a"}.PriceValue())
}
