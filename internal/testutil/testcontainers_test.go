//go:build integration

package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDBName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
	}{
		{name: "subtest separators", input: "TestBooking/idempotent replay", wantPrefix: "TestBooking_idempotent_replay_"},
		{name: "dots and dollars", input: "Test.a$b", wantPrefix: "Test_a_b_"},
		{name: "long names are truncated", input: strings.Repeat("x", 80), wantPrefix: strings.Repeat("x", maxDBNameLength) + "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeDBName(tt.input)
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), got)
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, ".")
		})
	}
}

func TestCleanup_Nil(t *testing.T) {
	var c *MongoDBContainer
	assert.NoError(t, c.Cleanup(t.Context()))
}
