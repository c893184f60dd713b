package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/i18n"
	"github.com/guttosm/diet-service/internal/metrics"
)

// bindInstructions reads the optional instructions body of a decision action.
// An empty body is fine; a malformed one is not.
func bindInstructions(c *gin.Context) (string, bool) {
	if c.Request.ContentLength == 0 {
		return "", true
	}
	req, err := BuildRequest[dto.InstructionsRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return "", false
	}
	return req.Instructions, true
}

// ApproveRequest handles POST /api/dietRequests/{id}/approve.
//
// @Summary      Approve a diet request
// @Description  Marks a pending diet request as having its diet order placed.
// @Tags         DietRequests
// @Produce      json
// @Param        id path string true "Diet request id"
// @Success      200 {object} dto.SuccessResponse "Updated request"
// @Failure      404 {object} dto.ErrorResponse "Request not found"
// @Failure      409 {object} dto.ErrorResponse "Request is not pending"
// @Router       /api/dietRequests/{id}/approve [post]
func (h *Handler) ApproveRequest(c *gin.Context) {
	req, err := h.Requests.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordRequestDecision("approved")
	NewResponseBuilder(c).SuccessOK(req)
}

// RejectRequest handles POST /api/dietRequests/{id}/reject.
//
// @Summary      Reject a diet request
// @Tags         DietRequests
// @Produce      json
// @Param        id path string true "Diet request id"
// @Success      200 {object} dto.SuccessResponse "Updated request"
// @Failure      404 {object} dto.ErrorResponse "Request not found"
// @Failure      409 {object} dto.ErrorResponse "Request is not pending"
// @Router       /api/dietRequests/{id}/reject [post]
func (h *Handler) RejectRequest(c *gin.Context) {
	req, err := h.Requests.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordRequestDecision("rejected")
	NewResponseBuilder(c).SuccessOK(req)
}

// ApproveOrder handles POST /api/dietOrders/{id}/approve.
//
// @Summary      Approve a diet order
// @Description  Approves a pending diet order and publishes its kitchen snapshot to the canteen collection. The snapshot is written before the order itself, so a failed write leaves the order pending and retryable.
// @Tags         DietOrders
// @Accept       json
// @Produce      json
// @Param        id path string true "Diet order id"
// @Param        request body dto.InstructionsRequest false "Dietician instructions"
// @Success      200 {object} dto.SuccessResponse "Approved order"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      409 {object} dto.ErrorResponse "Order is not pending"
// @Router       /api/dietOrders/{id}/approve [post]
func (h *Handler) ApproveOrder(c *gin.Context) {
	instructions, ok := bindInstructions(c)
	if !ok {
		return
	}
	order, err := h.Orders.Approve(c.Request.Context(), c.Param("id"), instructions)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordOrderDecision("approved")
	NewResponseBuilder(c).SuccessOK(order)
}

// RejectOrder handles POST /api/dietOrders/{id}/reject.
//
// @Summary      Reject a diet order
// @Description  Rejects a diet order and stops serving it. Rejecting an already rejected order is a no-op; an approved order cannot be rejected.
// @Tags         DietOrders
// @Accept       json
// @Produce      json
// @Param        id path string true "Diet order id"
// @Param        request body dto.InstructionsRequest false "Dietician instructions"
// @Success      200 {object} dto.SuccessResponse "Rejected order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      409 {object} dto.ErrorResponse "Order is already approved"
// @Router       /api/dietOrders/{id}/reject [post]
func (h *Handler) RejectOrder(c *gin.Context) {
	instructions, ok := bindInstructions(c)
	if !ok {
		return
	}
	order, err := h.Orders.Reject(c.Request.Context(), c.Param("id"), instructions)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordOrderDecision("rejected")
	NewResponseBuilder(c).SuccessOK(order)
}

// PauseOrder handles POST /api/dietOrders/{id}/pause.
//
// @Summary      Pause a diet order
// @Tags         DietOrders
// @Produce      json
// @Param        id path string true "Diet order id"
// @Success      200 {object} dto.SuccessResponse "Paused order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Router       /api/dietOrders/{id}/pause [post]
func (h *Handler) PauseOrder(c *gin.Context) {
	order, err := h.Orders.Pause(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(order)
}

// RestartOrder handles POST /api/dietOrders/{id}/restart.
//
// @Summary      Restart a paused diet order
// @Tags         DietOrders
// @Produce     json
// @Param        id path string true "Diet order id"
// @Success      200 {object} dto.SuccessResponse "Restarted order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Router       /api/dietOrders/{id}/restart [post]
func (h *Handler) RestartOrder(c *gin.Context) {
	order, err := h.Orders.Restart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(order)
}

// UpdateCanteenStatus handles POST /api/canteenOrders/{id}/status.
//
// @Summary      Advance a canteen order
// @Description  Moves a canteen order one step through the kitchen workflow pending → active → prepared → delivered. Only the exact successor of the current status is accepted.
// @Tags         Canteen
// @Accept       json
// @Produce      json
// @Param        id path string true "Canteen order id"
// @Param        request body dto.CanteenStatusRequest true "Target status"
// @Success      200 {object} dto.SuccessResponse "Updated canteen order"
// @Failure      400 {object} dto.ErrorResponse "Unknown status"
// @Failure      404 {object} dto.ErrorResponse "Canteen order not found"
// @Failure      409 {object} dto.ErrorResponse "Transition not allowed"
// @Router       /api/canteenOrders/{id}/status [post]
func (h *Handler) UpdateCanteenStatus(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.CanteenStatusRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	order, err := h.Canteen.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordCanteenTransition(req.Status)
	NewResponseBuilder(c).SuccessOK(order)
}

// CanteenSummary handles GET /api/canteen/summary.
//
// @Summary      Per-meal preparation summary
// @Description  Aggregates, per distinct food item, the quantity the kitchen must prepare for one meal slot across every canteen order.
// @Tags         Canteen
// @Produce      json
// @Param        meal query string true "Meal slot" Enums(breakfast, brunch, lunch, evening, dinner)
// @Success      200 {object} dto.SuccessResponse "Aggregated quantities by item name"
// @Failure      400 {object} dto.ErrorResponse "Unknown meal slot"
// @Router       /api/canteen/summary [get]
func (h *Handler) CanteenSummary(c *gin.Context) {
	totals, err := h.Canteen.Summary(c.Request.Context(), model.MealSlot(c.Query("meal")))
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(totals)
}

// RecomputePackage handles POST /api/dietPackages/{id}/recompute.
//
// @Summary      Recompute package totals
// @Description  Re-derives a package's cost and nutrition totals against the current catalog. Needed after catalog price or nutrition edits, which never propagate on their own.
// @Tags         DietPackages
// @Produce      json
// @Param        id path string true "Diet package id"
// @Success      200 {object} dto.SuccessResponse "Recomputed package"
// @Failure      404 {object} dto.ErrorResponse "Package not found"
// @Router       /api/dietPackages/{id}/recompute [post]
func (h *Handler) RecomputePackage(c *gin.Context) {
	start := time.Now()
	pkg, err := h.Packages.Recompute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordTotalsRecomputation(time.Since(start))
	NewResponseBuilder(c).SuccessOK(pkg)
}

// RefreshPackageSnapshots handles POST /api/dietPackages/{id}/refresh-snapshots.
//
// @Summary      Refresh package meal item snapshots
// @Description  Re-resolves each meal item's denormalized name and unit from the current catalog, then recomputes totals. Dangling references are left untouched.
// @Tags         DietPackages
// @Produce      json
// @Param        id path string true "Diet package id"
// @Success      200 {object} dto.SuccessResponse "Refreshed package"
// @Failure      404 {object} dto.ErrorResponse "Package not found"
// @Router       /api/dietPackages/{id}/refresh-snapshots [post]
func (h *Handler) RefreshPackageSnapshots(c *gin.Context) {
	pkg, err := h.Packages.RefreshSnapshots(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(pkg)
}
