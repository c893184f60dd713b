package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/repository"
)

// ComputeTotals recomputes a package's rate and nutrition totals from
// scratch against the given catalog index. Meal items whose reference does
// not resolve contribute zero; nothing is rounded.
func ComputeTotals(pkg *model.DietPackage, catalog map[string]model.FoodItem) {
	var rate float64
	var nutrition model.Nutrition
	for _, item := range pkg.AllMealItems() {
		food, ok := catalog[item.FoodItemID]
		if !ok {
			continue
		}
		rate += food.PriceValue() * item.Quantity
		nutrition.Add(food.NutritionValues(), item.Quantity)
	}
	pkg.TotalRate = rate
	pkg.TotalNutrition = nutrition
}

// Packages defines the diet package operations.
type Packages interface {
	List(ctx context.Context) ([]model.DietPackage, error)
	Get(ctx context.Context, id string) (*model.DietPackage, error)
	Create(ctx context.Context, pkg *model.DietPackage) (*model.DietPackage, error)
	Update(ctx context.Context, id string, pkg *model.DietPackage) (*model.DietPackage, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.DietPackage, error)
	Delete(ctx context.Context, id string) error
	Recompute(ctx context.Context, id string) (*model.DietPackage, error)
	RefreshSnapshots(ctx context.Context, id string) (*model.DietPackage, error)
}

// PackageService implements Packages. Totals are recomputed eagerly on every
// write so a stored package is always internally consistent with its own
// meal items (though not necessarily with later catalog edits).
type PackageService struct {
	packages  repository.DietPackageRepository
	foodItems repository.FoodItemRepository
	activity  *ActivityRecorder
}

// NewPackageService creates a PackageService.
func NewPackageService(packages repository.DietPackageRepository, foodItems repository.FoodItemRepository, activity *ActivityRecorder) *PackageService {
	return &PackageService{packages: packages, foodItems: foodItems, activity: activity}
}

// List returns every package.
func (s *PackageService) List(ctx context.Context) ([]model.DietPackage, error) {
	return s.packages.List(ctx)
}

// Get returns one package.
func (s *PackageService) Get(ctx context.Context, id string) (*model.DietPackage, error) {
	return s.packages.Get(ctx, id)
}

// Create stores a new package with freshly computed totals.
func (s *PackageService) Create(ctx context.Context, pkg *model.DietPackage) (*model.DietPackage, error) {
	if pkg.Name == "" {
		return nil, dto.ErrNameRequired
	}
	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}
	catalog, err := catalogIndex(ctx, s.foodItems)
	if err != nil {
		return nil, err
	}
	ComputeTotals(pkg, catalog)
	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_package_created", pkg.ID, "diet package created: "+pkg.Name)
	return pkg, nil
}

// Update replaces a package, recomputing its totals.
func (s *PackageService) Update(ctx context.Context, id string, pkg *model.DietPackage) (*model.DietPackage, error) {
	if pkg.Name == "" {
		return nil, dto.ErrNameRequired
	}
	pkg.ID = id
	catalog, err := catalogIndex(ctx, s.foodItems)
	if err != nil {
		return nil, err
	}
	ComputeTotals(pkg, catalog)
	if err := s.packages.Replace(ctx, id, pkg); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_package_updated", id, "diet package updated: "+pkg.Name)
	return pkg, nil
}

// Patch applies a partial update, then recomputes totals over the merged
// document. Totals supplied in the patch body are discarded.
func (s *PackageService) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.DietPackage, error) {
	delete(fields, "totalRate")
	delete(fields, "totalNutrition")

	merged, err := s.packages.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	catalog, err := catalogIndex(ctx, s.foodItems)
	if err != nil {
		return nil, err
	}
	ComputeTotals(merged, catalog)
	if err := s.packages.Replace(ctx, id, merged); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_package_updated", id, "diet package patched")
	return merged, nil
}

// Delete removes a package. Orders holding a snapshot of it are unaffected.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, "diet_package_deleted", id, "diet package deleted")
	return nil
}

// Recompute re-derives a package's totals against the current catalog, for
// use after catalog price or nutrition edits.
func (s *PackageService) Recompute(ctx context.Context, id string) (*model.DietPackage, error) {
	pkg, err := s.packages.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := catalogIndex(ctx, s.foodItems)
	if err != nil {
		return nil, err
	}
	ComputeTotals(pkg, catalog)
	if err := s.packages.Replace(ctx, id, pkg); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_package_recomputed", id, "diet package totals recomputed")
	return pkg, nil
}

// RefreshSnapshots re-resolves each meal item's denormalized name and unit
// from the current catalog, then recomputes totals. Dangling references are
// left untouched.
func (s *PackageService) RefreshSnapshots(ctx context.Context, id string) (*model.DietPackage, error) {
	pkg, err := s.packages.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := catalogIndex(ctx, s.foodItems)
	if err != nil {
		return nil, err
	}
	for _, slot := range model.MealSlots() {
		items := pkg.Slot(slot)
		for i := range items {
			food, ok := catalog[items[i].FoodItemID]
			if !ok {
				continue
			}
			items[i].FoodItemName = food.Name
			items[i].Unit = food.Unit
		}
		pkg.SetSlot(slot, items)
	}
	ComputeTotals(pkg, catalog)
	if err := s.packages.Replace(ctx, id, pkg); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_package_refreshed", id, "diet package snapshots refreshed")
	return pkg, nil
}
