package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/middleware"
	"github.com/guttosm/courier-portal/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler   *AuthHandler
	validator service.SessionValidator
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(handler *AuthHandler, validator service.SessionValidator) *AuthRoutes {
	return &AuthRoutes{
		handler:   handler,
		validator: validator,
	}
}

// Register registers the login flow routes behind their own, stricter rate limiter,
// and the session route when a validator is configured.
func (r *AuthRoutes) Register(api *gin.RouterGroup, cfg *RouterConfig) {
	if r.handler == nil {
		return
	}

	auth := api.Group("/auth")
	if cfg.AuthRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.RateWindow)
		auth.Use(limiter.RateLimit())
	}
	{
		auth.POST("/signup", r.handler.Signup)
		auth.POST("/login", r.handler.Login)
		auth.POST("/send-otp", r.handler.SendOTP)
		auth.POST("/verify-otp", r.handler.VerifyOTP)
	}

	if r.validator != nil {
		api.GET("/auth/session", middleware.SessionAuth(r.validator), r.handler.Session)
	}
}
