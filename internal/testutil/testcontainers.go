//go:build integration

// Package testutil starts the MongoDB container shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// DefaultMongoImage is used unless MONGO_TEST_IMAGE overrides it.
const DefaultMongoImage = "mongo:7.0"

const maxDBNameLength = 50

// MongoDBContainer wraps a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

var (
	sharedMu        sync.Mutex
	sharedContainer *MongoDBContainer
	sharedErr       error
	sharedStarted   bool
)

// SetupMongoDB starts a dedicated MongoDB container. Callers own Cleanup.
// Packages with many tests should prefer SetupTestMainWithMongoDB.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := os.Getenv("MONGO_TEST_IMAGE")
	if image == "" {
		image = DefaultMongoImage
	}

	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container %s: %w", image, err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

// GetSharedMongoDB starts the package-wide container on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if !sharedStarted {
		sharedStarted = true
		sharedContainer, sharedErr = SetupMongoDB(ctx)
	}
	return sharedContainer, sharedErr
}

// SetupTestMainWithMongoDB runs m against a shared container and tears it down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if err := sharedContainer.Cleanup(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to clean up shared MongoDB container")
	}
	sharedContainer = nil
	return code
}

// GetSharedContainerURI returns the shared container URI.
// It panics if SetupTestMainWithMongoDB has not started the container.
func GetSharedContainerURI() string {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedContainer == nil {
		panic("testutil: shared MongoDB container not started")
	}
	return sharedContainer.URI
}

// DatabaseName returns a fresh database name for t on the shared container.
func DatabaseName(t testing.TB) string {
	return SanitizeDBName(t.Name())
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
// Characters MongoDB rejects in database names become underscores.
func SanitizeDBName(testName string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, testName)

	if len(sanitized) > maxDBNameLength {
		sanitized = sanitized[:maxDBNameLength]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
