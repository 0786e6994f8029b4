package routes

import (
	"github.com/gin-gonic/gin"

	"prom_map/internal/controllers"
)

func LocationRoutes(r *gin.RouterGroup, lc *controllers.LocationController) {
	locations := r.Group("/locations")
	{
		locations.GET("", lc.List)
		locations.POST("", lc.Create)
		locations.GET("/:id", lc.Get)
		locations.PUT("/:id", lc.Update)
		locations.PATCH("/:id", lc.Update)
		locations.DELETE("/:id", lc.Delete)
	}
}

func RouteRoutes(r *gin.RouterGroup, rc *controllers.RouteController) {
	routes := r.Group("/routes")
	{
		routes.GET("", rc.List)
		routes.POST("", rc.Create)
		routes.GET("/:id", rc.Get)
		routes.GET("/:id/geojson", rc.GeoJSON)
		routes.PUT("/:id", rc.Update)
		routes.PATCH("/:id", rc.Update)
		routes.DELETE("/:id", rc.Delete)
	}
}
