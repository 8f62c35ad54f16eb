package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/middleware"
)

// registerPublicRoutes registers the routes that work without a session.
// Quotes made with a session still forward its backend token.
func registerPublicRoutes(api *gin.RouterGroup, h Handlers) {
	if h.Weight != nil {
		api.POST("/weight/chargeable", h.Weight.Chargeable)
	}

	if h.HSN != nil {
		api.GET("/hsn", h.HSN.Search)
		api.GET("/hsn/:code", h.HSN.Lookup)
	}

	if h.Quote != nil {
		api.POST("/domestic/price", h.Quote.DomesticPrice)
		api.POST("/international/price", h.Quote.InternationalPrice)
		api.GET("/international/options", h.Quote.InternationalOptions)
	}

	if h.Shipment != nil {
		api.GET("/shipments/:id", h.Shipment.Get)
	}
}

// registerSessionRoutes registers the shipment routes for signed-in users.
func registerSessionRoutes(protected *gin.RouterGroup, h Handlers, cfg *RouterConfig) {
	if h.Shipment == nil {
		return
	}
	protected.GET("/shipments", h.Shipment.List)

	booking := protected.Group("/shipments")
	if cfg.EnableIdempotency {
		booking.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	booking.POST("/domestic", h.Shipment.BookDomestic)
	booking.POST("/international", h.Shipment.BookInternational)
}

// registerEmployeeRoutes registers the staff-only routes.
func registerEmployeeRoutes(protected *gin.RouterGroup, h Handlers) {
	if h.Employee == nil {
		return
	}
	employee := protected.Group("/employee")
	employee.Use(middleware.RequireRole(model.RoleEmployee, model.RoleAdmin))
	{
		employee.GET("/day-end-stats", h.Employee.DayEndStats)
		employee.POST("/redeem-code", h.Employee.RedeemCode)
		employee.GET("/activity", h.Employee.Activity)
	}
}
