//go:build !integration

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/courier-portal/internal/domain/dto"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		handler     gin.HandlerFunc
		locale      string
		wantStatus  int
		wantMessage string
		wantBody    string
	}{
		{
			name:        "string panic",
			handler:     func(*gin.Context) { panic("tracking history corrupted") },
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "error panic in hindi",
			handler:     func(*gin.Context) { panic(errors.New("nil shipment")) },
			locale:      "hi",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "एक अप्रत्याशित त्रुटि हुई",
		},
		{
			name: "panic after response started keeps response",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "partial")
				panic("late failure")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
		},
		{
			name:       "no panic",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET("/api/shipments/:id", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/api/shipments/SHP123456", nil)
			req.Header.Set(RequestIDHeader, "panic-req-1")
			if tt.locale != "" {
				req.Header.Set("Accept-Language", tt.locale)
			}
			w := httptest.NewRecorder()
			assert.NotPanics(t, func() { router.ServeHTTP(w, req) })

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInternal, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, "panic-req-1", resp.RequestID)
		})
	}
}
