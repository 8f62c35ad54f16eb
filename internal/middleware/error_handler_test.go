//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/circuitbreaker"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupHandler   func(*gin.Engine)
		expectedStatus int
		expectedBody   string
		mustContain    []string
	}{
		{
			name: "unclassified errors are treated as upstream failures",
			path: "/error",
			setupHandler: func(router *gin.Engine) {
				router.GET("/error", func(c *gin.Context) {
					_ = c.Error(errors.New("test error"))
				})
			},
			expectedStatus: http.StatusBadGateway,
			mustContain:    []string{"upstream_error"},
		},
		{
			name: "backend rejection passes through",
			path: "/rejected",
			setupHandler: func(router *gin.Engine) {
				router.GET("/rejected", func(c *gin.Context) {
					_ = c.Error(&backend.Error{Endpoint: "domestic_price", Status: http.StatusUnprocessableEntity, Message: "pincode not serviceable"})
				})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			mustContain:    []string{"pincode not serviceable"},
		},
		{
			name: "backend server error is bad gateway",
			path: "/upstream",
			setupHandler: func(router *gin.Engine) {
				router.GET("/upstream", func(c *gin.Context) {
					_ = c.Error(&backend.Error{Endpoint: "domestic_price", Status: http.StatusInternalServerError, Message: "stack trace"})
				})
			},
			expectedStatus: http.StatusBadGateway,
			mustContain:    []string{"upstream_error"},
		},
		{
			name: "open circuit is service unavailable",
			path: "/open",
			setupHandler: func(router *gin.Engine) {
				router.GET("/open", func(c *gin.Context) {
					_ = c.Error(circuitbreaker.ErrCircuitOpen)
				})
			},
			expectedStatus: http.StatusServiceUnavailable,
			mustContain:    []string{"service_unavailable"},
		},
		{
			name: "written response is kept",
			path: "/written",
			setupHandler: func(router *gin.Engine) {
				router.GET("/written", func(c *gin.Context) {
					c.String(http.StatusAccepted, "accepted")
					_ = c.Error(errors.New("late error"))
				})
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   "accepted",
		},
		{
			name: "does nothing when no errors",
			path: "/ok",
			setupHandler: func(router *gin.Engine) {
				router.GET("/ok", func(c *gin.Context) {
					c.String(http.StatusOK, "ok")
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			tt.setupHandler(router)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}
