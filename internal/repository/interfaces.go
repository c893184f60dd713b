package repository

import (
	"context"

	"github.com/guttosm/diet-service/internal/domain/model"
)

// CollectionRepository is the access contract shared by every resource
// collection of the store. Patch applies a partial update and returns the
// merged document; Replace overwrites the whole document.
type CollectionRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) error
	Replace(ctx context.Context, id string, doc *T) error
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id string) error
	// Upsert replaces the document with the given id, inserting it when
	// absent. The canteen projection relies on this, keyed by diet order id.
	Upsert(ctx context.Context, id string, doc *T) error
}

// Per-resource aliases keep service signatures readable.
type (
	FoodItemRepository     = CollectionRepository[model.FoodItem]
	DietPackageRepository  = CollectionRepository[model.DietPackage]
	DietRequestRepository  = CollectionRepository[model.DietRequest]
	DietOrderRepository    = CollectionRepository[model.DietOrder]
	CanteenOrderRepository = CollectionRepository[model.CanteenOrder]
	CustomPlanRepository   = CollectionRepository[model.CustomPlan]
)

// ActivityRepository persists staff action entries.
type ActivityRepository interface {
	Create(ctx context.Context, entry *model.ActivityEntry) error
}
