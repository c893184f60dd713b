package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/service"
)

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	items := []*model.FoodItem{
		{ID: "rice", Name: "Rice", Unit: "Kilogram", Quantity: "1", Price: "50",
			Calories: "130", Protein: "2.7", Carbohydrates: "28", Fat: "0.3"},
		{ID: "milk", Name: "Milk", Unit: "Litre", Quantity: "1", Price: "30",
			Calories: "60", Protein: "3.2", Carbohydrates: "5", Fat: "3.25"},
	}
	for _, item := range items {
		_, err := env.catalog.Create(ctx, item)
		require.NoError(t, err)
	}
}

func TestComputeTotals(t *testing.T) {
	catalog := map[string]model.FoodItem{
		"rice": {ID: "rice", Price: "50", Calories: "130", Protein: "2.7", Carbohydrates: "28", Fat: "0.3"},
		"milk": {ID: "milk", Price: "30", Calories: "60", Protein: "3.2", Carbohydrates: "5", Fat: "3.25"},
	}
	pkg := &model.DietPackage{
		Breakfast: []model.MealItem{{FoodItemID: "milk", Quantity: 1}},
		Lunch:     []model.MealItem{{FoodItemID: "rice", Quantity: 2}},
		Dinner:    []model.MealItem{{FoodItemID: "ghost", Quantity: 5}},
	}

	service.ComputeTotals(pkg, catalog)

	assert.InDelta(t, 130.0, pkg.TotalRate, 1e-9)
	assert.InDelta(t, 320.0, pkg.TotalNutrition.Calories, 1e-9)
	assert.InDelta(t, 8.6, pkg.TotalNutrition.Protein, 1e-9)
	assert.InDelta(t, 61.0, pkg.TotalNutrition.Carbohydrates, 1e-9)
	assert.InDelta(t, 3.85, pkg.TotalNutrition.Fat, 1e-9)
}

func TestComputeTotals_EmptyPackage(t *testing.T) {
	pkg := &model.DietPackage{TotalRate: 999, TotalNutrition: model.Nutrition{Calories: 999}}
	service.ComputeTotals(pkg, nil)
	assert.Zero(t, pkg.TotalRate)
	assert.Zero(t, pkg.TotalNutrition.Calories)
}

func TestPackageService_CreateComputesTotals(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)
	ctx := context.Background()

	created, err := env.packages.Create(ctx, &model.DietPackage{
		Name:      "Standard Diet",
		Type:      "Veg",
		Breakfast: []model.MealItem{{FoodItemID: "milk", FoodItemName: "Milk", Quantity: 1, Unit: "Litre"}},
		Lunch:     []model.MealItem{{FoodItemID: "rice", FoodItemName: "Rice", Quantity: 2, Unit: "Kilogram"}},
		TotalRate: 12345, // caller-supplied totals are discarded
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.InDelta(t, 130.0, created.TotalRate, 1e-9)
	assert.InDelta(t, 320.0, created.TotalNutrition.Calories, 1e-9)
}

func TestPackageService_PatchRecomputesTotals(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)
	ctx := context.Background()

	created, err := env.packages.Create(ctx, &model.DietPackage{
		Name:  "Standard Diet",
		Lunch: []model.MealItem{{FoodItemID: "rice", Quantity: 1}},
	})
	require.NoError(t, err)

	patched, err := env.packages.Patch(ctx, created.ID, map[string]interface{}{
		"lunch":     []map[string]interface{}{{"foodItemId": "rice", "quantity": 3}},
		"totalRate": 1.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 150.0, patched.TotalRate, 1e-9)
}

func TestPackageService_RecomputeAfterCatalogEdit(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)
	ctx := context.Background()

	created, err := env.packages.Create(ctx, &model.DietPackage{
		Name:  "Standard Diet",
		Lunch: []model.MealItem{{FoodItemID: "rice", Quantity: 2}},
	})
	require.NoError(t, err)
	require.InDelta(t, 100.0, created.TotalRate, 1e-9)

	_, err = env.catalog.Patch(ctx, "rice", map[string]interface{}{"price": "80"})
	require.NoError(t, err)

	// catalog edits never propagate on their own
	stored, err := env.packages.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, stored.TotalRate, 1e-9)

	recomputed, err := env.packages.Recompute(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 160.0, recomputed.TotalRate, 1e-9)
}

func TestPackageService_RefreshSnapshots(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)
	ctx := context.Background()

	created, err := env.packages.Create(ctx, &model.DietPackage{
		Name: "Standard Diet",
		Breakfast: []model.MealItem{
			{FoodItemID: "rice", FoodItemName: "Old Rice", Quantity: 1, Unit: "Gram"},
			{FoodItemID: "ghost", FoodItemName: "Ghost", Quantity: 1, Unit: "Piece"},
		},
	})
	require.NoError(t, err)

	refreshed, err := env.packages.RefreshSnapshots(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", refreshed.Breakfast[0].FoodItemName)
	assert.Equal(t, "Kilogram", refreshed.Breakfast[0].Unit)
	// dangling reference stays as stored
	assert.Equal(t, "Ghost", refreshed.Breakfast[1].FoodItemName)
	assert.Equal(t, "Piece", refreshed.Breakfast[1].Unit)
}
