package repository

import (
	"github.com/guttosm/diet-service/internal/circuitbreaker"
	"github.com/guttosm/diet-service/internal/domain/model"
)

// Store bundles one repository per resource collection. Both backends
// produce the same shape, so everything above this layer is
// backend-agnostic.
type Store struct {
	FoodItems     FoodItemRepository
	DietPackages  DietPackageRepository
	DietRequests  DietRequestRepository
	DietOrders    DietOrderRepository
	CanteenOrders CanteenOrderRepository
	CustomPlans   CustomPlanRepository
	Activity      ActivityRepository
}

// NewMongoStore builds a Store over MongoDB collections, all sharing one
// circuit breaker (nil disables circuit breaking).
func NewMongoStore(db *MongoDB, breaker *circuitbreaker.CircuitBreaker) *Store {
	return &Store{
		FoodItems:     NewMongoCollectionRepository[model.FoodItem](db.FoodItems, breaker),
		DietPackages:  NewMongoCollectionRepository[model.DietPackage](db.DietPackages, breaker),
		DietRequests:  NewMongoCollectionRepository[model.DietRequest](db.DietRequests, breaker),
		DietOrders:    NewMongoCollectionRepository[model.DietOrder](db.DietOrders, breaker),
		CanteenOrders: NewMongoCollectionRepository[model.CanteenOrder](db.CanteenOrders, breaker),
		CustomPlans:   NewMongoCollectionRepository[model.CustomPlan](db.CustomPlans, breaker),
		Activity:      NewMongoActivityRepository(db, breaker),
	}
}

// NewFileStore builds a Store over JSON files in dir, using the fixed
// legacy storage keys.
func NewFileStore(dir string) (*Store, error) {
	foodItems, err := NewFileCollectionRepository(dir, FileKeyFoodItems, func(f *model.FoodItem) string { return f.ID })
	if err != nil {
		return nil, err
	}
	packages, err := NewFileCollectionRepository(dir, FileKeyDietPackages, func(p *model.DietPackage) string { return p.ID })
	if err != nil {
		return nil, err
	}
	requests, err := NewFileCollectionRepository(dir, FileKeyDietRequests, func(r *model.DietRequest) string { return r.ID })
	if err != nil {
		return nil, err
	}
	orders, err := NewFileCollectionRepository(dir, FileKeyDietOrders, func(o *model.DietOrder) string { return o.ID })
	if err != nil {
		return nil, err
	}
	canteen, err := NewFileCollectionRepository(dir, FileKeyCanteenOrders, func(c *model.CanteenOrder) string { return c.ID })
	if err != nil {
		return nil, err
	}
	plans, err := NewFileCollectionRepository(dir, FileKeyCustomPlans, func(p *model.CustomPlan) string { return p.ID })
	if err != nil {
		return nil, err
	}
	activity, err := NewFileActivityRepository(dir)
	if err != nil {
		return nil, err
	}

	return &Store{
		FoodItems:     foodItems,
		DietPackages:  packages,
		DietRequests:  requests,
		DietOrders:    orders,
		CanteenOrders: canteen,
		CustomPlans:   plans,
		Activity:      activity,
	}, nil
}
