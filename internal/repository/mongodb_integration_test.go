//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/courier-portal/internal/testutil"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.DatabaseName(t))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, ActivityLogsCollection, db.Logs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("set logs TTL", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, 7*24*time.Hour))

		cursor, err := db.Logs.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		var ttl interface{}
		for _, idx := range indexes {
			if idx["name"] == logsTTLIndexName {
				ttl = idx["expireAfterSeconds"]
			}
		}
		assert.EqualValues(t, 7*24*60*60, ttl)
	})

	t.Run("zero TTL removes expiry", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 0))

		cursor, err := db.Logs.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))
		for _, idx := range indexes {
			assert.NotEqual(t, logsTTLIndexName, idx["name"])
		}
	})
}

func TestMongoDB_InvalidURI(t *testing.T) {
	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "x", MongoConfig{
		ConnectTimeout:         500 * time.Millisecond,
		ServerSelectionTimeout: 500 * time.Millisecond,
	})
	assert.Error(t, err)
}
