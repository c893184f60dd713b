// Package repository provides the data access layer for the diet service.
//
// Two backends implement the same repository interfaces: MongoDB (primary)
// and a file-backed JSON store carried over from the legacy local-storage
// flows (fallback, also used by tests).
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document with the requested id does not exist.
var ErrNotFound = errors.New("not found")

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides the MongoDB client and the per-resource collections.
// Collection names match the REST resource names of the store.
type MongoDB struct {
	Client        *mongo.Client
	Database      *mongo.Database
	FoodItems     *mongo.Collection
	DietPackages  *mongo.Collection
	DietRequests  *mongo.Collection
	DietOrders    *mongo.Collection
	CanteenOrders *mongo.Collection
	CustomPlans   *mongo.Collection
	ActivityLogs  *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:        client,
		Database:      db,
		FoodItems:     db.Collection("foodItems"),
		DietPackages:  db.Collection("dietPackages"),
		DietRequests:  db.Collection("dietRequests"),
		DietOrders:    db.Collection("dietOrders"),
		CanteenOrders: db.Collection("canteenOrders"),
		CustomPlans:   db.Collection("customPlans"),
		ActivityLogs:  db.Collection("activityLogs"),
	}

	if err := m.createIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// createIndexes creates the secondary indexes used by list views.
// Errors from already-existing indexes are ignored.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	orderStatusIndex := mongo.IndexModel{
		Keys: map[string]interface{}{"approvalStatus": 1},
	}
	_, _ = m.DietOrders.Indexes().CreateOne(ctx, orderStatusIndex)

	canteenStatusIndex := mongo.IndexModel{
		Keys: map[string]interface{}{"status": 1},
	}
	_, _ = m.CanteenOrders.Indexes().CreateOne(ctx, canteenStatusIndex)

	requestIDIndex := mongo.IndexModel{
		Keys: map[string]interface{}{"request_id": 1},
	}
	_, _ = m.ActivityLogs.Indexes().CreateOne(ctx, requestIDIndex)

	return nil
}

// SetActivityTTL updates the TTL index on the activityLogs collection.
func (m *MongoDB) SetActivityTTL(ctx context.Context, ttlDays int) error {
	_, _ = m.ActivityLogs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"timestamp": 1},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.ActivityLogs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
