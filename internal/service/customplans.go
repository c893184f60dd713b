package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/repository"
)

// CustomPlans defines the ad hoc plan operations.
type CustomPlans interface {
	List(ctx context.Context) ([]model.CustomPlan, error)
	Get(ctx context.Context, id string) (*model.CustomPlan, error)
	Create(ctx context.Context, plan *model.CustomPlan) (*model.CustomPlan, error)
	Update(ctx context.Context, id string, plan *model.CustomPlan) (*model.CustomPlan, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.CustomPlan, error)
	Delete(ctx context.Context, id string) error
}

// CustomPlanService implements CustomPlans. When a plan's meal items resolve
// against the catalog its amount is recomputed the same way package rates
// are; a plan of entirely free-form items keeps the amount it was given.
type CustomPlanService struct {
	plans     repository.CustomPlanRepository
	foodItems repository.FoodItemRepository
	activity  *ActivityRecorder
}

// NewCustomPlanService creates a CustomPlanService.
func NewCustomPlanService(plans repository.CustomPlanRepository, foodItems repository.FoodItemRepository, activity *ActivityRecorder) *CustomPlanService {
	return &CustomPlanService{plans: plans, foodItems: foodItems, activity: activity}
}

// List returns every custom plan.
func (s *CustomPlanService) List(ctx context.Context) ([]model.CustomPlan, error) {
	return s.plans.List(ctx)
}

// Get returns one custom plan.
func (s *CustomPlanService) Get(ctx context.Context, id string) (*model.CustomPlan, error) {
	return s.plans.Get(ctx, id)
}

// Create stores a new custom plan, deriving its amount where possible.
func (s *CustomPlanService) Create(ctx context.Context, plan *model.CustomPlan) (*model.CustomPlan, error) {
	if plan.PackageName == "" {
		return nil, dto.ErrNameRequired
	}
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if err := s.deriveAmount(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "custom_plan_created", plan.ID, "custom plan created: "+plan.PackageName)
	return plan, nil
}

// Update replaces a custom plan, re-deriving its amount where possible.
func (s *CustomPlanService) Update(ctx context.Context, id string, plan *model.CustomPlan) (*model.CustomPlan, error) {
	if plan.PackageName == "" {
		return nil, dto.ErrNameRequired
	}
	plan.ID = id
	if err := s.deriveAmount(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.plans.Replace(ctx, id, plan); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "custom_plan_updated", id, "custom plan updated")
	return plan, nil
}

// Patch applies a partial update, then re-derives the amount over the merged
// plan where possible.
func (s *CustomPlanService) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.CustomPlan, error) {
	merged, err := s.plans.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	before := merged.Amount
	if err := s.deriveAmount(ctx, merged); err != nil {
		return nil, err
	}
	if merged.Amount != before {
		if err := s.plans.Replace(ctx, id, merged); err != nil {
			return nil, err
		}
	}
	s.activity.Record(ctx, "custom_plan_updated", id, "custom plan patched")
	return merged, nil
}

// Delete removes a custom plan. Orders referencing it keep their frozen
// snapshots.
func (s *CustomPlanService) Delete(ctx context.Context, id string) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, "custom_plan_deleted", id, "custom plan deleted")
	return nil
}

// deriveAmount recomputes the plan amount from catalog prices when at least
// one meal item reference resolves. Plans of entirely free-form items keep
// their supplied amount.
func (s *CustomPlanService) deriveAmount(ctx context.Context, plan *model.CustomPlan) error {
	catalog, err := catalogIndex(ctx, s.foodItems)
	if err != nil {
		return err
	}
	var amount float64
	resolved := false
	for _, item := range plan.AllMealItems() {
		food, ok := catalog[item.FoodItemID]
		if !ok {
			continue
		}
		resolved = true
		amount += food.PriceValue() * item.Quantity
	}
	if resolved {
		plan.Amount = amount
	}
	return nil
}
