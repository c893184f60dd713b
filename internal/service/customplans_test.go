package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/domain/model"
)

func TestCustomPlanService_CreateDerivesAmount(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	created, err := env.plans.Create(context.Background(), &model.CustomPlan{
		PackageName: "Renal Custom",
		Meals: map[string][]model.MealItem{
			"breakfast": {{FoodItemID: "milk", FoodItemName: "Milk", Quantity: 2, Unit: "Litre"}},
			"lunch":     {{FoodItemID: "rice", FoodItemName: "Rice", Quantity: 1, Unit: "Kilogram"}},
		},
		Amount: 5, // overridden because references resolve
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.InDelta(t, 110.0, created.Amount, 1e-9)
}

func TestCustomPlanService_FreeFormKeepsAmount(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.plans.Create(context.Background(), &model.CustomPlan{
		PackageName: "Chef Special",
		Meals: map[string][]model.MealItem{
			"dinner": {{FoodItemName: "Soup", Quantity: 1, Unit: "Bowl"}},
		},
		Amount: 75,
	})
	require.NoError(t, err)
	assert.InDelta(t, 75.0, created.Amount, 1e-9)
}

func TestCustomPlanService_CreateRequiresName(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.plans.Create(context.Background(), &model.CustomPlan{Amount: 10})
	assert.ErrorIs(t, err, dto.ErrNameRequired)
}

func TestCustomPlanService_UpdateRederivesAmount(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)
	ctx := context.Background()

	created, err := env.plans.Create(ctx, &model.CustomPlan{
		PackageName: "Renal Custom",
		Meals: map[string][]model.MealItem{
			"lunch": {{FoodItemID: "rice", Quantity: 1}},
		},
	})
	require.NoError(t, err)
	require.InDelta(t, 50.0, created.Amount, 1e-9)

	created.Meals["lunch"] = []model.MealItem{{FoodItemID: "rice", Quantity: 3}}
	updated, err := env.plans.Update(ctx, created.ID, created)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, updated.Amount, 1e-9)
}
