package http_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/diet-service/internal/domain/model"
)

func seedPackageAndOrder(t *testing.T, router *gin.Engine) model.DietOrder {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/foodItems", model.FoodItem{
		ID:       "rice",
		Name:     "Rice",
		Unit:     "Kilogram",
		Quantity: "1",
		Price:    "50",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/dietPackages", model.DietPackage{
		ID:   "pkg-1",
		Name: "Diabetic Diet",
		Type: "Veg",
		Lunch: []model.MealItem{
			{FoodItemID: "rice", FoodItemName: "Rice", Quantity: 2, Unit: "Kilogram"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/dietOrders", model.DietOrder{
		PatientID:   "patient-1",
		PatientName: "John Doe",
		DietPackage: "pkg-1",
		StartDate:   "2026-09-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order model.DietOrder
	decodeData(t, w, &order)
	return order
}

func TestApproveOrder_PublishesCanteenTicket(t *testing.T) {
	router := newTestRouter(t)
	order := seedPackageAndOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/approve", map[string]string{
		"instructions": "No added sugar",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var approved model.DietOrder
	decodeData(t, w, &approved)
	assert.Equal(t, model.ApprovalApproved, approved.ApprovalStatus)
	assert.Equal(t, "No added sugar", approved.DieticianInstructions)

	// The canteen ticket shares the order id
	w = doJSON(t, router, http.MethodGet, "/api/canteenOrders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ticket model.CanteenOrder
	decodeData(t, w, &ticket)
	assert.Equal(t, model.CanteenPending, ticket.Status)
	assert.Equal(t, []string{"Rice - 2 Kilogram"}, ticket.FoodItems)
}

func TestApproveOrder_EmptyBody(t *testing.T) {
	router := newTestRouter(t)
	order := seedPackageAndOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/approve", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApproveOrder_AlreadyDecided(t *testing.T) {
	router := newTestRouter(t)
	order := seedPackageAndOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/reject", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/approve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveOrder_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/dietOrders/missing/approve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestDecisions(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/dietRequests", model.DietRequest{
		PatientID:   "patient-1",
		PatientName: "John Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var req model.DietRequest
	decodeData(t, w, &req)
	assert.Equal(t, model.RequestPending, req.Status)

	w = doJSON(t, router, http.MethodPost, "/api/dietRequests/"+req.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var approved model.DietRequest
	decodeData(t, w, &approved)
	assert.Equal(t, model.RequestPlaced, approved.Status)

	// A decided request cannot be rejected afterwards
	w = doJSON(t, router, http.MethodPost, "/api/dietRequests/"+req.ID+"/reject", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPauseAndRestartOrder(t *testing.T) {
	router := newTestRouter(t)
	order := seedPackageAndOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/pause", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var paused model.DietOrder
	decodeData(t, w, &paused)
	assert.Equal(t, model.OrderPaused, paused.Status)
	assert.NotEmpty(t, paused.PauseDate)

	w = doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/restart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var restarted model.DietOrder
	decodeData(t, w, &restarted)
	assert.Equal(t, model.OrderActive, restarted.Status)
	assert.NotEmpty(t, restarted.RestartDate)
}

func TestUpdateCanteenStatus(t *testing.T) {
	router := newTestRouter(t)
	order := seedPackageAndOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// pending → active
	w = doJSON(t, router, http.MethodPost, "/api/canteenOrders/"+order.ID+"/status", map[string]string{"status": "active"})
	require.Equal(t, http.StatusOK, w.Code)

	// skipping a step is rejected
	w = doJSON(t, router, http.MethodPost, "/api/canteenOrders/"+order.ID+"/status", map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// unknown status
	w = doJSON(t, router, http.MethodPost, "/api/canteenOrders/"+order.ID+"/status", map[string]string{"status": "eaten"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing body
	w = doJSON(t, router, http.MethodPost, "/api/canteenOrders/"+order.ID+"/status", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// active → prepared sets the flag
	w = doJSON(t, router, http.MethodPost, "/api/canteenOrders/"+order.ID+"/status", map[string]string{"status": "prepared"})
	require.Equal(t, http.StatusOK, w.Code)
	var ticket model.CanteenOrder
	decodeData(t, w, &ticket)
	assert.True(t, ticket.Prepared)
}

func TestCanteenSummary(t *testing.T) {
	router := newTestRouter(t)
	order := seedPackageAndOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/dietOrders/"+order.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/canteen/summary?meal=lunch", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var totals map[string]model.QuantityUnit
	decodeData(t, w, &totals)
	require.Contains(t, totals, "Rice")
	assert.InDelta(t, 2, totals["Rice"].Quantity, 0.001)

	// A slot absent from every ticket's breakdown aggregates to an empty map
	w = doJSON(t, router, http.MethodGet, "/api/canteen/summary?meal=dinner", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var empty map[string]model.QuantityUnit
	decodeData(t, w, &empty)
	assert.Empty(t, empty)

	// Unknown meal slot
	w = doJSON(t, router, http.MethodGet, "/api/canteen/summary?meal=supper", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecomputePackage(t *testing.T) {
	router := newTestRouter(t)
	seedPackageAndOrder(t, router)

	// Raise the catalog price, then recompute
	w := doJSON(t, router, http.MethodPatch, "/api/foodItems/rice", map[string]interface{}{"price": "100"})
	require.Equal(t, http.StatusOK, w.Code)

	// Totals are stale until recomputed
	w = doJSON(t, router, http.MethodGet, "/api/dietPackages/pkg-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stale model.DietPackage
	decodeData(t, w, &stale)
	assert.InDelta(t, 100, stale.TotalRate, 0.001)

	w = doJSON(t, router, http.MethodPost, "/api/dietPackages/pkg-1/recompute", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fresh model.DietPackage
	decodeData(t, w, &fresh)
	assert.InDelta(t, 200, fresh.TotalRate, 0.001)
}
