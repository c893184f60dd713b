// Package service implements the diet-management business operations on top
// of the repository layer: catalog pricing, package totals, the request and
// order approval workflows, the kitchen projection, and custom plans.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/repository"
)

// Catalog defines the food catalog operations.
type Catalog interface {
	List(ctx context.Context) ([]model.FoodItem, error)
	Get(ctx context.Context, id string) (*model.FoodItem, error)
	Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error)
	Update(ctx context.Context, id string, item *model.FoodItem) (*model.FoodItem, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.FoodItem, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService implements Catalog. PricePerUnit is derived on every write
// path; callers never supply it.
type CatalogService struct {
	foodItems repository.FoodItemRepository
	activity  *ActivityRecorder
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(foodItems repository.FoodItemRepository, activity *ActivityRecorder) *CatalogService {
	return &CatalogService{foodItems: foodItems, activity: activity}
}

// List returns the whole catalog.
func (s *CatalogService) List(ctx context.Context) ([]model.FoodItem, error) {
	return s.foodItems.List(ctx)
}

// Get returns one catalog entry.
func (s *CatalogService) Get(ctx context.Context, id string) (*model.FoodItem, error) {
	return s.foodItems.Get(ctx, id)
}

// Create validates and stores a new catalog entry, deriving its price per
// unit. A missing id is generated.
func (s *CatalogService) Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	if item.Name == "" {
		return nil, dto.ErrNameRequired
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.DerivePricePerUnit()
	if err := s.foodItems.Create(ctx, item); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "food_item_created", item.ID, "food item created: "+item.Name)
	return item, nil
}

// Update replaces a catalog entry, re-deriving its price per unit.
func (s *CatalogService) Update(ctx context.Context, id string, item *model.FoodItem) (*model.FoodItem, error) {
	if item.Name == "" {
		return nil, dto.ErrNameRequired
	}
	item.ID = id
	item.DerivePricePerUnit()
	if err := s.foodItems.Replace(ctx, id, item); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "food_item_updated", id, "food item updated: "+item.Name)
	return item, nil
}

// Patch applies a partial update. When the patch touches price or quantity
// the stored price per unit is re-derived from the merged document, so the
// derivation can never be overridden by hand.
func (s *CatalogService) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.FoodItem, error) {
	_, priceTouched := fields["price"]
	_, qtyTouched := fields["quantity"]
	delete(fields, "pricePerUnit")

	merged, err := s.foodItems.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if priceTouched || qtyTouched {
		merged.DerivePricePerUnit()
		if err := s.foodItems.Replace(ctx, id, merged); err != nil {
			return nil, err
		}
	}
	s.activity.Record(ctx, "food_item_updated", id, "food item patched")
	return merged, nil
}

// Delete removes a catalog entry. Meal items referencing it become dangling
// and contribute zero to totals from then on.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.foodItems.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, "food_item_deleted", id, "food item deleted")
	return nil
}

// catalogIndex loads the catalog into an id-keyed map for totals resolution.
func catalogIndex(ctx context.Context, repo repository.FoodItemRepository) (map[string]model.FoodItem, error) {
	items, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]model.FoodItem, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return index, nil
}
