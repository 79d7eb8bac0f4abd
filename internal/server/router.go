package server

import (
	"log/slog"
	"net/http"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/config"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/health"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/httpx"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "order-service"
	serviceVersion = "1.0.0"
)

// NewRouter assembles the gin engine: middleware, the business routes, the
// root metadata route and the not-found fallback.
func NewRouter(orderHandler *handler.OrderHandler, healthHandler *health.Handler, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to clear trusted proxies", "error", err.Error())
	}

	router.Use(RequestLogger(logger))
	router.Use(Recovery(logger))
	router.Use(cors.Default())

	router.GET("/health", healthHandler.Check)
	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders", orderHandler.ListOrders)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     serviceName,
			"environment": config.EnvironmentName(),
			"version":     serviceVersion,
			"status":      "running",
		})
	})

	router.NoRoute(func(c *gin.Context) {
		httpx.NotFound(c, c.Request.URL.Path)
	})

	return router
}
