package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/repository"
)

// Orders defines the diet order lifecycle operations.
type Orders interface {
	List(ctx context.Context) ([]model.DietOrder, error)
	Get(ctx context.Context, id string) (*model.DietOrder, error)
	Create(ctx context.Context, order *model.DietOrder) (*model.DietOrder, error)
	Update(ctx context.Context, id string, order *model.DietOrder) (*model.DietOrder, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.DietOrder, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id, instructions string) (*model.DietOrder, error)
	Reject(ctx context.Context, id, instructions string) (*model.DietOrder, error)
	Pause(ctx context.Context, id string) (*model.DietOrder, error)
	Restart(ctx context.Context, id string) (*model.DietOrder, error)
}

// OrderService implements Orders. Approval publishes a one-way snapshot to
// the canteen projection before the order itself is persisted, so an
// approved order without a kitchen ticket can never be observed.
type OrderService struct {
	orders   repository.DietOrderRepository
	packages repository.DietPackageRepository
	plans    repository.CustomPlanRepository
	canteen  repository.CanteenOrderRepository
	activity *ActivityRecorder
}

// NewOrderService creates an OrderService.
func NewOrderService(store *repository.Store, activity *ActivityRecorder) *OrderService {
	return &OrderService{
		orders:   store.DietOrders,
		packages: store.DietPackages,
		plans:    store.CustomPlans,
		canteen:  store.CanteenOrders,
		activity: activity,
	}
}

func validateOrder(order *model.DietOrder) error {
	if order.PatientID == "" {
		return dto.ErrPatientIDRequired
	}
	if order.PatientName == "" {
		return dto.ErrPatientNameRequired
	}
	if order.DietPackage == "" {
		return dto.ErrDietPackageRequired
	}
	if order.StartDate == "" {
		return dto.ErrStartDateRequired
	}
	if !dto.ValidContactNumber(order.ContactNumber) {
		return dto.ErrContactNumberInvalid
	}
	return nil
}

// mealSource is the resolved origin of an order's meals: either a catalog
// package or a custom plan.
type mealSource struct {
	name     string
	dietType string
	rate     float64
	slots    map[string][]model.MealItem
}

// resolveMealSource follows the order's package reference. A dangling
// reference returns nil with no error; the snapshot fields already on the
// order are the only truth left in that case.
func (s *OrderService) resolveMealSource(ctx context.Context, ref string) (*mealSource, error) {
	if planID, ok := model.IsCustomPlanRef(ref); ok {
		plan, err := s.plans.Get(ctx, planID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &mealSource{
			name:     plan.PackageName,
			dietType: plan.DietType,
			rate:     plan.Amount,
			slots:    plan.Meals,
		}, nil
	}

	pkg, err := s.packages.Get(ctx, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	slots := make(map[string][]model.MealItem, len(model.MealSlots()))
	for _, slot := range model.MealSlots() {
		slots[string(slot)] = pkg.Slot(slot)
	}
	return &mealSource{
		name:     pkg.Name,
		dietType: pkg.Type,
		rate:     pkg.TotalRate,
		slots:    slots,
	}, nil
}

// List returns every diet order.
func (s *OrderService) List(ctx context.Context) ([]model.DietOrder, error) {
	return s.orders.List(ctx)
}

// Get returns one diet order.
func (s *OrderService) Get(ctx context.Context, id string) (*model.DietOrder, error) {
	return s.orders.Get(ctx, id)
}

// Create validates and stores a new diet order, freezing the referenced
// package's name and rate as snapshots. Status starts active with approval
// pending.
func (s *OrderService) Create(ctx context.Context, order *model.DietOrder) (*model.DietOrder, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = model.OrderActive
	}
	order.ApprovalStatus = model.ApprovalPending

	source, err := s.resolveMealSource(ctx, order.DietPackage)
	if err != nil {
		return nil, err
	}
	if source != nil {
		order.PackageName = source.name
		order.PackageRate = strconv.FormatFloat(source.rate, 'f', -1, 64)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_order_created", order.ID, "diet order created for "+order.PatientName)
	return order, nil
}

// Update replaces a diet order without re-freezing package snapshots.
func (s *OrderService) Update(ctx context.Context, id string, order *model.DietOrder) (*model.DietOrder, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	order.ID = id
	if err := s.orders.Replace(ctx, id, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_order_updated", id, "diet order updated")
	return order, nil
}

// Patch applies a partial update without transition checks.
func (s *OrderService) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.DietOrder, error) {
	if number, ok := fields["contactNumber"].(string); ok && !dto.ValidContactNumber(number) {
		return nil, dto.ErrContactNumberInvalid
	}
	merged, err := s.orders.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_order_updated", id, "diet order patched")
	return merged, nil
}

// Delete removes a diet order. The canteen projection is a one-way snapshot
// and is left in place.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, "diet_order_deleted", id, "diet order deleted")
	return nil
}

// Approve marks a pending order approved and publishes its kitchen snapshot.
// The canteen upsert happens first; if it fails the order stays pending and
// the action can be retried.
func (s *OrderService) Approve(ctx context.Context, id, instructions string) (*model.DietOrder, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.ApprovalStatus.CanTransition(model.ApprovalApproved) {
		return nil, ErrInvalidTransition
	}

	snapshot, err := s.buildCanteenSnapshot(ctx, order, instructions)
	if err != nil {
		return nil, err
	}
	if err := s.canteen.Upsert(ctx, snapshot.ID, snapshot); err != nil {
		return nil, err
	}

	order.ApprovalStatus = model.ApprovalApproved
	order.DieticianInstructions = instructions
	if err := s.orders.Replace(ctx, id, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_order_approved", id, "diet order approved for "+order.PatientName)
	return order, nil
}

// buildCanteenSnapshot assembles the kitchen-facing projection of an order at
// approval time. A dangling package reference still yields a ticket, carrying
// the order's frozen snapshot fields and no meal detail.
func (s *OrderService) buildCanteenSnapshot(ctx context.Context, order *model.DietOrder, instructions string) (*model.CanteenOrder, error) {
	snapshot := &model.CanteenOrder{
		ID:                    order.ID,
		PatientName:           order.PatientName,
		Bed:                   order.Bed,
		Ward:                  order.Ward,
		DietPackageName:       order.PackageName,
		SpecialNotes:          order.DoctorNotes,
		Status:                model.CanteenPending,
		DieticianInstructions: instructions,
		FoodItems:             []string{},
	}

	source, err := s.resolveMealSource(ctx, order.DietPackage)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return snapshot, nil
	}

	snapshot.DietPackageName = source.name
	snapshot.DietType = source.dietType
	snapshot.MealItems = make(map[string][]model.MealItem, len(source.slots))
	for _, slot := range model.MealSlots() {
		items := source.slots[string(slot)]
		if len(items) == 0 {
			continue
		}
		snapshot.MealItems[string(slot)] = items
		for _, item := range items {
			snapshot.FoodItems = append(snapshot.FoodItems, item.Display())
		}
	}
	return snapshot, nil
}

// Reject marks an order rejected and stops it. Rejecting an already rejected
// order is a permitted no-op; an approved order cannot be rejected.
func (s *OrderService) Reject(ctx context.Context, id, instructions string) (*model.DietOrder, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.ApprovalStatus.CanTransition(model.ApprovalRejected) {
		return nil, ErrInvalidTransition
	}

	order.ApprovalStatus = model.ApprovalRejected
	order.Status = model.OrderStopped
	order.DieticianInstructions = instructions
	if err := s.orders.Replace(ctx, id, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_order_rejected", id, "diet order rejected for "+order.PatientName)
	return order, nil
}

// Pause suspends serving of an order, stamping the pause date. Pausing is
// allowed regardless of approval status.
func (s *OrderService) Pause(ctx context.Context, id string) (*model.DietOrder, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Status = model.OrderPaused
	order.PauseDate = time.Now().UTC().Format(time.RFC3339)
	if err := s.orders.Replace(ctx, id, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_order_paused", id, "diet order paused")
	return order, nil
}

// Restart resumes serving of an order, stamping the restart date.
func (s *OrderService) Restart(ctx context.Context, id string) (*model.DietOrder, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Status = model.OrderActive
	order.RestartDate = time.Now().UTC().Format(time.RFC3339)
	if err := s.orders.Replace(ctx, id, order); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_order_restarted", id, "diet order restarted")
	return order, nil
}
