//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/courier-portal/internal/domain/model"
)

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupContext   func(*gin.Context)
		roles          []string
		expectedStatus int
	}{
		{
			name:           "no session returns unauthorized",
			setupContext:   func(c *gin.Context) {},
			roles:          []string{model.RoleEmployee},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid session type returns unauthorized",
			setupContext: func(c *gin.Context) {
				c.Set(string(SessionKey), "invalid")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "no roles allows any session",
			setupContext: func(c *gin.Context) {
				c.Set(string(SessionKey), &model.Session{Email: "asha@example.com", Role: model.RoleCustomer})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "employee allowed",
			setupContext: func(c *gin.Context) {
				c.Set(string(SessionKey), &model.Session{Email: "ravi@example.com", Role: model.RoleEmployee})
			},
			roles:          []string{model.RoleEmployee, model.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name: "admin allowed",
			setupContext: func(c *gin.Context) {
				c.Set(string(SessionKey), &model.Session{Email: "root@example.com", Role: model.RoleAdmin})
			},
			roles:          []string{model.RoleEmployee, model.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name: "customer forbidden",
			setupContext: func(c *gin.Context) {
				c.Set(string(SessionKey), &model.Session{Email: "asha@example.com", Role: model.RoleCustomer})
			},
			roles:          []string{model.RoleEmployee, model.RoleAdmin},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				tt.setupContext(c)
				c.Next()
			})
			router.Use(RequireRole(tt.roles...))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
