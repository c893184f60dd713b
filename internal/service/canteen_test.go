package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/service"
)

func seedCanteenOrder(t *testing.T, env *testEnv, id string, order model.CanteenOrder) {
	t.Helper()
	order.ID = id
	if order.Status == "" {
		order.Status = model.CanteenPending
	}
	require.NoError(t, env.store.CanteenOrders.Upsert(context.Background(), id, &order))
}

func TestCanteenService_UpdateStatusProgression(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedCanteenOrder(t, env, "c1", model.CanteenOrder{PatientName: "John"})

	active, err := env.canteen.UpdateStatus(ctx, "c1", "active")
	require.NoError(t, err)
	assert.Equal(t, model.CanteenActive, active.Status)
	assert.False(t, active.Prepared)

	prepared, err := env.canteen.UpdateStatus(ctx, "c1", "prepared")
	require.NoError(t, err)
	assert.True(t, prepared.Prepared)
	assert.False(t, prepared.Delivered)

	delivered, err := env.canteen.UpdateStatus(ctx, "c1", "delivered")
	require.NoError(t, err)
	assert.True(t, delivered.Delivered)
	assert.True(t, delivered.Prepared)
}

func TestCanteenService_UpdateStatusRejectsSkips(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedCanteenOrder(t, env, "c1", model.CanteenOrder{PatientName: "John"})

	_, err := env.canteen.UpdateStatus(ctx, "c1", "delivered")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	_, err = env.canteen.UpdateStatus(ctx, "c1", "prepared")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	// no going back either
	_, err = env.canteen.UpdateStatus(ctx, "c1", "pending")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestCanteenService_UpdateStatusUnknown(t *testing.T) {
	env := newTestEnv(t)
	seedCanteenOrder(t, env, "c1", model.CanteenOrder{})

	_, err := env.canteen.UpdateStatus(context.Background(), "c1", "cooking")
	assert.ErrorIs(t, err, service.ErrUnknownStatus)
}

func TestCanteenService_SummaryFromMealItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedCanteenOrder(t, env, "c1", model.CanteenOrder{
		MealItems: map[string][]model.MealItem{
			"lunch": {{FoodItemName: "Rice", Quantity: 2, Unit: "Kilogram"}},
		},
	})
	seedCanteenOrder(t, env, "c2", model.CanteenOrder{
		MealItems: map[string][]model.MealItem{
			"lunch":  {{FoodItemName: "Rice", Quantity: 1.5, Unit: "Kilogram"}, {FoodItemName: "Dal", Quantity: 1, Unit: "Bowl"}},
			"dinner": {{FoodItemName: "Soup", Quantity: 1, Unit: "Bowl"}},
		},
	})

	totals, err := env.canteen.Summary(ctx, model.SlotLunch)
	require.NoError(t, err)
	assert.Equal(t, model.QuantityUnit{Quantity: 3.5, Unit: "Kilogram"}, totals["Rice"])
	assert.Equal(t, model.QuantityUnit{Quantity: 1, Unit: "Bowl"}, totals["Dal"])
	assert.NotContains(t, totals, "Soup")
}

func TestCanteenService_SummaryIgnoresSlotsMissingFromBreakdown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// a lunch-only ticket carries its flattened display strings too; those
	// must not leak into other slots through the fallback path
	seedCanteenOrder(t, env, "c1", model.CanteenOrder{
		MealItems: map[string][]model.MealItem{
			"lunch": {{FoodItemName: "Rice", Quantity: 2, Unit: "Kilogram"}},
		},
		FoodItems: []string{"Rice - 2 Kilogram"},
	})

	breakfast, err := env.canteen.Summary(ctx, model.SlotBreakfast)
	require.NoError(t, err)
	assert.Empty(t, breakfast)

	lunch, err := env.canteen.Summary(ctx, model.SlotLunch)
	require.NoError(t, err)
	assert.Equal(t, model.QuantityUnit{Quantity: 2, Unit: "Kilogram"}, lunch["Rice"])
}

func TestCanteenService_SummaryUnknownSlot(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.canteen.Summary(context.Background(), model.MealSlot("supper"))
	assert.ErrorIs(t, err, service.ErrUnknownMealSlot)
}

func TestCanteenService_SummaryFallsBackToDisplayStrings(t *testing.T) {
	env := newTestEnv(t)

	// an older ticket with no structured meal detail
	seedCanteenOrder(t, env, "c1", model.CanteenOrder{
		FoodItems: []string{"Rice - 2 Kilogram", "Chef Special"},
	})

	totals, err := env.canteen.Summary(context.Background(), model.SlotBreakfast)
	require.NoError(t, err)
	assert.Equal(t, model.QuantityUnit{Quantity: 2, Unit: "Kilogram"}, totals["Rice"])
	assert.Equal(t, model.QuantityUnit{}, totals["Chef Special"])
}

func TestParseDisplayItem(t *testing.T) {
	tests := []struct {
		display  string
		wantName string
		want     model.QuantityUnit
	}{
		{"Rice - 2 Kilogram", "Rice", model.QuantityUnit{Quantity: 2, Unit: "Kilogram"}},
		{"Milk - 1.5 Litre", "Milk", model.QuantityUnit{Quantity: 1.5, Unit: "Litre"}},
		{"Egg - 3", "Egg", model.QuantityUnit{Quantity: 3}},
		{"Chef Special", "Chef Special", model.QuantityUnit{}},
		{"Soup - a bowl", "Soup", model.QuantityUnit{}},
		{"", "", model.QuantityUnit{}},
	}
	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			name, qu := service.ParseDisplayItem(tt.display)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.want, qu)
		})
	}
}
