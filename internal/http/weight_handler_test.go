//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/service"
)

func TestWeightHandler_Chargeable(t *testing.T) {
	handler := NewWeightHandler(service.NewWeightService())
	router := newTestEngine(func(r *gin.Engine) {
		r.POST("/api/weight/chargeable", handler.Chargeable)
	})

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expected       model.ChargeableWeight
	}{
		{
			name:           "actual weight governs",
			body:           `{"weight_kg": 2, "length_cm": 10, "width_cm": 10, "height_cm": 10}`,
			expectedStatus: http.StatusOK,
			expected:       model.ChargeableWeight{Actual: 2, Volumetric: 0.2, Chargeable: 2},
		},
		{
			name:           "volumetric weight governs",
			body:           `{"weight_kg": 1, "length_cm": 50, "width_cm": 40, "height_cm": 30}`,
			expectedStatus: http.StatusOK,
			expected:       model.ChargeableWeight{Actual: 1, Volumetric: 12, Chargeable: 12},
		},
		{
			name:           "form strings and blanks",
			body:           `{"weight_kg": "1.5", "length_cm": "", "width_cm": null, "height_cm": "abc"}`,
			expectedStatus: http.StatusOK,
			expected:       model.ChargeableWeight{Actual: 1.5, Volumetric: 0, Chargeable: 1.5},
		},
		{
			name:           "empty object",
			body:           `{}`,
			expectedStatus: http.StatusOK,
			expected:       model.ChargeableWeight{},
		},
		{
			name:           "negative values count as zero",
			body:           `{"weight_kg": -3, "length_cm": 10, "width_cm": 10, "height_cm": 10}`,
			expectedStatus: http.StatusOK,
			expected:       model.ChargeableWeight{Actual: 0, Volumetric: 0.2, Chargeable: 0.2},
		},
		{
			name:           "malformed JSON",
			body:           `{"weight_kg": }`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/api/weight/chargeable", tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var got model.ChargeableWeight
			envelope := decodeData(t, w, &got)
			assert.NotEmpty(t, envelope.RequestID)
			assert.InDelta(t, tt.expected.Actual, got.Actual, 1e-9)
			assert.InDelta(t, tt.expected.Volumetric, got.Volumetric, 1e-9)
			assert.InDelta(t, tt.expected.Chargeable, got.Chargeable, 1e-9)
		})
	}
}
