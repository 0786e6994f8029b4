package routes

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"prom_map/internal/controllers"
	"prom_map/internal/logger"
	"prom_map/internal/middleware"
	"prom_map/internal/services"
)

// Options carries what the router needs from the environment.
type Options struct {
	DB          *gorm.DB
	BasePath    string
	AdminSecret string
	CORSOrigins []string
	AccessLog   io.Writer // nil disables the access log
}

// handlers groups the controllers so both the public and the admin groups
// register the same instances.
type handlers struct {
	locations *controllers.LocationController
	routes    *controllers.RouteController
	payments  *controllers.PaymentController
}

func SetupRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	if opts.AccessLog != nil {
		r.Use(logger.AccessLog(opts.AccessLog, "/healthz"))
	}
	r.Use(middleware.EnableCORS(opts.CORSOrigins))

	h := handlers{
		locations: controllers.NewLocationController(services.NewLocationService(opts.DB)),
		routes:    controllers.NewRouteController(services.NewRouteService(opts.DB)),
		payments:  controllers.NewPaymentController(services.NewPaymentService(opts.DB)),
	}

	api := r.Group(opts.BasePath)
	LocationRoutes(api, h.locations)
	RouteRoutes(api, h.routes)
	AdminRoutes(api, h, opts.AdminSecret)
	HealthRoutes(r, opts.DB)

	return r
}

// HealthRoutes registers /healthz. Without a usable connection pool it
// always answers 503.
func HealthRoutes(r *gin.Engine, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Warn("HealthRoutes: no connection pool, /healthz reports unavailable")
		r.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		})
		return
	}
	r.GET("/healthz", controllers.Health(sqlDB))
}
