package routes

import (
	"github.com/gin-gonic/gin"

	"prom_map/internal/middleware"
)

// AdminRoutes mirrors the catalog lists and the location CRUD under /admin.
// Routes have no admin mutations.
func AdminRoutes(r *gin.RouterGroup, h handlers, secret string) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(secret))
	{
		admin.GET("/locations", h.locations.List)
		admin.POST("/locations", h.locations.Create)
		admin.PUT("/locations/:id", h.locations.Update)
		admin.PATCH("/locations/:id", h.locations.Update)
		admin.DELETE("/locations/:id", h.locations.Delete)

		admin.GET("/routes", h.routes.List)

		admin.GET("/payments", h.payments.List)
		admin.GET("/payments/:paymentId", h.payments.Get)
	}
}
