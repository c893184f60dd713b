package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/guttosm/diet-service/internal/domain/model"
)

// Fixed storage keys carried over from the legacy local-storage path.
// Each key maps to one JSON file holding the whole collection.
const (
	FileKeyDietOrders    = "dietOrders"
	FileKeyDietPackages  = "dietPackages"
	FileKeyDietRequests  = "dietRequests"
	FileKeyCanteenOrders = "canteenOrders"
	FileKeyCustomPlans   = "customPlans"
	FileKeyFoodItems     = "diet_planner_food_items"
	FileKeyActivity      = "activityLogs"
)

// FileCollectionRepository implements CollectionRepository on a single JSON
// file. The collection is read on open and rewritten after every mutation,
// mirroring the original local-storage behavior. Intended for the
// single-admin-desk fallback mode and for tests; no cross-process locking.
type FileCollectionRepository[T any] struct {
	path string
	idOf func(*T) string
	mu   sync.RWMutex
}

// NewFileCollectionRepository creates a file-backed repository stored at
// dir/key.json. idOf extracts a document's id.
func NewFileCollectionRepository[T any](dir, key string, idOf func(*T) string) (*FileCollectionRepository[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCollectionRepository[T]{
		path: filepath.Join(dir, key+".json"),
		idOf: idOf,
	}, nil
}

func (r *FileCollectionRepository[T]) load() ([]T, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *FileCollectionRepository[T]) save(docs []T) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

// List returns the whole collection.
func (r *FileCollectionRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// Get returns the document with the given id, or ErrNotFound.
func (r *FileCollectionRepository[T]) Get(_ context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if r.idOf(&docs[i]) == id {
			return &docs[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new document and rewrites the collection.
func (r *FileCollectionRepository[T]) Create(_ context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	docs = append(docs, *doc)
	return r.save(docs)
}

// Replace overwrites the document with the given id, or returns ErrNotFound.
func (r *FileCollectionRepository[T]) Replace(_ context.Context, id string, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	for i := range docs {
		if r.idOf(&docs[i]) == id {
			docs[i] = *doc
			return r.save(docs)
		}
	}
	return ErrNotFound
}

// Patch applies a partial update via a JSON merge and returns the merged
// document.
func (r *FileCollectionRepository[T]) Patch(_ context.Context, id string, fields map[string]interface{}) (*T, error) {
	delete(fields, "id")
	delete(fields, "_id")

	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if r.idOf(&docs[i]) != id {
			continue
		}
		merged, err := mergeDocument(&docs[i], fields)
		if err != nil {
			return nil, err
		}
		docs[i] = *merged
		if err := r.save(docs); err != nil {
			return nil, err
		}
		return &docs[i], nil
	}
	return nil, ErrNotFound
}

// Delete removes the document with the given id, or returns ErrNotFound.
func (r *FileCollectionRepository[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	for i := range docs {
		if r.idOf(&docs[i]) == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.save(docs)
		}
	}
	return ErrNotFound
}

// Upsert replaces the document with the given id, appending it when absent.
func (r *FileCollectionRepository[T]) Upsert(_ context.Context, id string, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	for i := range docs {
		if r.idOf(&docs[i]) == id {
			docs[i] = *doc
			return r.save(docs)
		}
	}
	docs = append(docs, *doc)
	return r.save(docs)
}

// mergeDocument round-trips the document through JSON, overlaying the patch
// fields on top of the existing values.
func mergeDocument[T any](doc *T, fields map[string]interface{}) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return nil, err
	}
	for k, v := range fields {
		asMap[k] = v
	}
	raw, err = json.Marshal(asMap)
	if err != nil {
		return nil, err
	}
	var merged T
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// FileActivityRepository appends activity entries to a JSON file.
type FileActivityRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileActivityRepository creates a file-backed activity log.
func NewFileActivityRepository(dir string) (*FileActivityRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileActivityRepository{path: filepath.Join(dir, FileKeyActivity+".json")}, nil
}

// Create appends an activity entry.
func (r *FileActivityRepository) Create(_ context.Context, entry *model.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []model.ActivityEntry
	data, err := os.ReadFile(r.path)
	if err == nil {
		_ = json.Unmarshal(data, &entries)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	entries = append(entries, *entry)

	data, err = json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}
