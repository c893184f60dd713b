package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/repository"
)

// Canteen defines the kitchen-side operations.
type Canteen interface {
	List(ctx context.Context) ([]model.CanteenOrder, error)
	Get(ctx context.Context, id string) (*model.CanteenOrder, error)
	Create(ctx context.Context, order *model.CanteenOrder) (*model.CanteenOrder, error)
	Update(ctx context.Context, id string, order *model.CanteenOrder) (*model.CanteenOrder, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.CanteenOrder, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) (*model.CanteenOrder, error)
	Summary(ctx context.Context, slot model.MealSlot) (map[string]model.QuantityUnit, error)
}

// CanteenService implements Canteen. Canteen orders are created only by the
// order approval flow; the kitchen advances them and reads aggregates.
type CanteenService struct {
	canteen  repository.CanteenOrderRepository
	activity *ActivityRecorder
}

// NewCanteenService creates a CanteenService.
func NewCanteenService(canteen repository.CanteenOrderRepository, activity *ActivityRecorder) *CanteenService {
	return &CanteenService{canteen: canteen, activity: activity}
}

// List returns every canteen order.
func (s *CanteenService) List(ctx context.Context) ([]model.CanteenOrder, error) {
	return s.canteen.List(ctx)
}

// Get returns one canteen order.
func (s *CanteenService) Get(ctx context.Context, id string) (*model.CanteenOrder, error) {
	return s.canteen.Get(ctx, id)
}

// Create stores a canteen order directly. The approval flow is the normal
// producer of tickets; this path exists for imports and manual corrections.
func (s *CanteenService) Create(ctx context.Context, order *model.CanteenOrder) (*model.CanteenOrder, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = model.CanteenPending
	}
	if order.FoodItems == nil {
		order.FoodItems = []string{}
	}
	if err := s.canteen.Create(ctx, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "canteen_order_created", order.ID, "canteen order created")
	return order, nil
}

// Update replaces a canteen order without transition checks.
func (s *CanteenService) Update(ctx context.Context, id string, order *model.CanteenOrder) (*model.CanteenOrder, error) {
	order.ID = id
	if err := s.canteen.Replace(ctx, id, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "canteen_order_updated", id, "canteen order updated")
	return order, nil
}

// Patch applies a partial update without transition checks.
func (s *CanteenService) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.CanteenOrder, error) {
	merged, err := s.canteen.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "canteen_order_updated", id, "canteen order patched")
	return merged, nil
}

// Delete removes a canteen order.
func (s *CanteenService) Delete(ctx context.Context, id string) error {
	if err := s.canteen.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, "canteen_order_deleted", id, "canteen order deleted")
	return nil
}

// UpdateStatus advances a canteen order through the kitchen workflow. Only
// the exact successor of the current status is accepted. Reaching prepared or
// delivered also sets the corresponding flag.
func (s *CanteenService) UpdateStatus(ctx context.Context, id, status string) (*model.CanteenOrder, error) {
	target := model.CanteenStatus(status)
	switch target {
	case model.CanteenPending, model.CanteenActive, model.CanteenPaused,
		model.CanteenStopped, model.CanteenPrepared, model.CanteenDelivered:
	default:
		return nil, ErrUnknownStatus
	}

	order, err := s.canteen.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(target) {
		return nil, ErrInvalidTransition
	}

	order.Status = target
	switch target {
	case model.CanteenPrepared:
		order.Prepared = true
	case model.CanteenDelivered:
		order.Delivered = true
	}
	if err := s.canteen.Replace(ctx, id, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "canteen_status_updated", id, "canteen order moved to "+status)
	return order, nil
}

// Summary aggregates, per distinct item name, the total quantity the kitchen
// must prepare for one meal slot across every canteen order. Orders carrying
// a per-slot breakdown are read directly, and a slot missing from the
// breakdown contributes nothing; only tickets with no breakdown at all fall
// back to parsing their flattened display strings.
func (s *CanteenService) Summary(ctx context.Context, slot model.MealSlot) (map[string]model.QuantityUnit, error) {
	if _, ok := model.ParseMealSlot(string(slot)); !ok {
		return nil, ErrUnknownMealSlot
	}

	orders, err := s.canteen.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]model.QuantityUnit)
	for _, order := range orders {
		if order.MealItems != nil {
			for _, item := range order.MealItems[string(slot)] {
				accumulate(totals, item.FoodItemName, item.Quantity, item.Unit)
			}
			continue
		}
		for _, display := range order.FoodItems {
			name, qu := ParseDisplayItem(display)
			accumulate(totals, name, qu.Quantity, qu.Unit)
		}
	}
	return totals, nil
}

func accumulate(totals map[string]model.QuantityUnit, name string, quantity float64, unit string) {
	entry := totals[name]
	entry.Quantity += quantity
	if entry.Unit == "" {
		entry.Unit = unit
	}
	totals[name] = entry
}

var leadingNumber = regexp.MustCompile(`^(\d+(?:\.\d+)?)`)

// ParseDisplayItem splits a "<name> - <quantity> <unit>" display string back
// into its parts. A string without the separator or without a leading number
// after it yields the whole string as name with a zero quantity and no unit.
func ParseDisplayItem(display string) (string, model.QuantityUnit) {
	parts := strings.SplitN(display, " - ", 2)
	if len(parts) != 2 {
		return display, model.QuantityUnit{}
	}
	name := parts[0]

	match := leadingNumber.FindString(parts[1])
	if match == "" {
		return name, model.QuantityUnit{}
	}
	quantity, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return name, model.QuantityUnit{}
	}
	unit := strings.TrimSpace(strings.TrimPrefix(parts[1], match))
	return name, model.QuantityUnit{Quantity: quantity, Unit: unit}
}
