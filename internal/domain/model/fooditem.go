// Package model defines the core domain entities for the diet service.
package model

import "strconv"

// FoodItem is the single source of nutritional and price truth.
// Numeric-looking fields are kept as strings because they carry raw form
// values end to end; PricePerUnit derivation owns the parsing.
//
// @Description Food catalog entry with nutrition per unit and derived price per unit
type FoodItem struct {
	ID            string `bson:"_id" json:"id"`
	Name          string `bson:"name" json:"name" example:"Rice"`
	FoodType      string `bson:"foodType" json:"foodType" example:"Solid"`
	Category      string `bson:"category" json:"category" example:"Grains"`
	Unit          string `bson:"unit" json:"unit" example:"Kilogram"`
	Quantity      string `bson:"quantity" json:"quantity" example:"4"`
	Calories      string `bson:"calories" json:"calories" example:"130"`
	Protein       string `bson:"protein" json:"protein" example:"2.7"`
	Carbohydrates string `bson:"carbohydrates" json:"carbohydrates" example:"28"`
	Fat           string `bson:"fat" json:"fat" example:"0.3"`
	Price         string `bson:"price" json:"price" example:"100"`
	PricePerUnit  string `bson:"pricePerUnit" json:"pricePerUnit" example:"25.00"`
}

// DerivePricePerUnit recomputes PricePerUnit from the current Quantity and
// Price. The result is price/quantity fixed to two decimals, or the empty
// string when quantity is non-numeric or not positive.
func (f *FoodItem) DerivePricePerUnit() {
	qty, errQ := strconv.ParseFloat(f.Quantity, 64)
	price, errP := strconv.ParseFloat(f.Price, 64)
	if errQ != nil || errP != nil || qty <= 0 {
		f.PricePerUnit = ""
		return
	}
	f.PricePerUnit = strconv.FormatFloat(price/qty, 'f', 2, 64)
}

// numeric parses a stored string field for totals arithmetic.
// Unparseable values contribute zero, matching how dangling references do.
func numeric(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// PriceValue returns the parsed price, zero when non-numeric.
func (f FoodItem) PriceValue() float64 { return numeric(f.Price) }

// NutritionValues returns the parsed per-unit nutrition of the item.
func (f FoodItem) NutritionValues() Nutrition {
	return Nutrition{
		Calories:      numeric(f.Calories),
		Protein:       numeric(f.Protein),
		Carbohydrates: numeric(f.Carbohydrates),
		Fat:           numeric(f.Fat),
	}
}
