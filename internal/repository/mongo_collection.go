package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/diet-service/internal/circuitbreaker"
	"github.com/guttosm/diet-service/internal/domain/model"
)

// MongoCollectionRepository implements CollectionRepository on a MongoDB
// collection, optionally guarded by a circuit breaker.
type MongoCollectionRepository[T any] struct {
	collection *mongo.Collection
	breaker    *circuitbreaker.CircuitBreaker
}

// NewMongoCollectionRepository creates a repository for the given collection.
// A nil breaker disables circuit breaking.
func NewMongoCollectionRepository[T any](collection *mongo.Collection, breaker *circuitbreaker.CircuitBreaker) *MongoCollectionRepository[T] {
	return &MongoCollectionRepository[T]{collection: collection, breaker: breaker}
}

func (r *MongoCollectionRepository[T]) guard(ctx context.Context, fn func() error) error {
	if r.breaker == nil {
		return fn()
	}
	return r.breaker.Execute(ctx, fn)
}

// List returns every document in the collection.
func (r *MongoCollectionRepository[T]) List(ctx context.Context) ([]T, error) {
	var docs []T
	err := r.guard(ctx, func() error {
		cursor, err := r.collection.Find(ctx, bson.M{})
		if err != nil {
			return err
		}
		defer func() {
			_ = cursor.Close(ctx)
		}()
		return cursor.All(ctx, &docs)
	})
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

// Get returns the document with the given id, or ErrNotFound.
func (r *MongoCollectionRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	var doc T
	err := r.guard(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create inserts a new document.
func (r *MongoCollectionRepository[T]) Create(ctx context.Context, doc *T) error {
	return r.guard(ctx, func() error {
		_, err := r.collection.InsertOne(ctx, doc)
		return err
	})
}

// Replace overwrites the document with the given id, or returns ErrNotFound.
func (r *MongoCollectionRepository[T]) Replace(ctx context.Context, id string, doc *T) error {
	return r.guard(ctx, func() error {
		result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Patch applies a partial update and returns the merged document.
func (r *MongoCollectionRepository[T]) Patch(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	delete(fields, "id")
	delete(fields, "_id")

	var doc T
	err := r.guard(ctx, func() error {
		return r.collection.FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": fields},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes the document with the given id, or returns ErrNotFound.
func (r *MongoCollectionRepository[T]) Delete(ctx context.Context, id string) error {
	return r.guard(ctx, func() error {
		result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Upsert replaces the document with the given id, inserting it when absent.
// Used by the canteen projection, which is keyed by the diet order id.
func (r *MongoCollectionRepository[T]) Upsert(ctx context.Context, id string, doc *T) error {
	return r.guard(ctx, func() error {
		_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
		return err
	})
}

// MongoActivityRepository persists activity entries to the activityLogs
// collection.
type MongoActivityRepository struct {
	collection *mongo.Collection
	breaker    *circuitbreaker.CircuitBreaker
}

// NewMongoActivityRepository creates an activity repository.
func NewMongoActivityRepository(db *MongoDB, breaker *circuitbreaker.CircuitBreaker) *MongoActivityRepository {
	return &MongoActivityRepository{collection: db.ActivityLogs, breaker: breaker}
}

// Create inserts an activity entry.
func (r *MongoActivityRepository) Create(ctx context.Context, entry *model.ActivityEntry) error {
	fn := func() error {
		_, err := r.collection.InsertOne(ctx, entry)
		return err
	}
	if r.breaker == nil {
		return fn()
	}
	return r.breaker.Execute(ctx, fn)
}
