//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/courier-portal/internal/testutil"
)

// TestMain runs the package's integration tests against one MongoDB container.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
