package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"github.com/Moustaash/lcc-availability-2/internal/infra/config"
	"github.com/Moustaash/lcc-availability-2/internal/infra/obs"
)

type AvailabilityHTTP interface {
	Properties(c *gin.Context)
	Bars(c *gin.Context)
	Day(c *gin.Context)
}

type SyncHTTP interface {
	Trigger(c *gin.Context)
	Status(c *gin.Context)
}

type Handlers struct {
	Availability AvailabilityHTTP
	Sync         SyncHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Availability != nil {
		api.GET("/properties", h.Availability.Properties)
		api.GET("/properties/:id/bars", h.Availability.Bars)
		api.GET("/properties/:id/days/:day", h.Availability.Day)
	}
	if h.Sync != nil {
		api.POST("/sync", h.Sync.Trigger)
		api.GET("/sync/status", h.Sync.Status)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
