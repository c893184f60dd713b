//go:build integration

// Package testutil provides testcontainers setup for integration tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: container,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container != nil {
		if err := m.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}

var (
	sharedContainer    *MongoDBContainer
	sharedContainerErr error
	sharedOnce         sync.Once
)

// GetSharedMongoDB returns a shared MongoDB container for use across tests
// in a package. The container is created once and reused; call Cleanup on
// it in TestMain after m.Run().
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedContainerErr
}

// UniqueDBName derives a MongoDB database name from a test name, replacing
// path separators and appending a suffix for uniqueness.
func UniqueDBName(testName string) string {
	sanitized := make([]rune, 0, len(testName))
	for _, r := range testName {
		if r == '/' || r == '\\' {
			r = '_'
		}
		sanitized = append(sanitized, r)
	}
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", string(sanitized), time.Now().UnixNano()%1000000)
}
