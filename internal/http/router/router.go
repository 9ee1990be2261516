package router

import (
	"net/http"
	"time"

	apphttp "holyland_phone/internal/http"
	"holyland_phone/platform/apperr"
	"holyland_phone/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// New builds the gin engine: shared middleware, health check and every module's routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app.Config)))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.NoRoute(func(c *gin.Context) {
		httpkit.HandleError(c, apperr.NotFound("route not found"))
	})

	limiter := httpkit.NewIPRateLimiter(rate.Limit(app.Config.GetRateLimitRPS()), app.Config.GetRateLimitBurst(), app.Logger)
	v1 := engine.Group("/api/v1")
	v1.Use(limiter.RateLimit())

	rctx := &apphttp.RouterContext{
		Engine: engine,
		V1:     v1,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(rctx)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	conf := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", httpkit.HeaderRequestID},
		ExposeHeaders:    []string{httpkit.HeaderRequestID},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	switch {
	case cfg.GetCORSAllowAll():
		conf.AllowAllOrigins = true
	case len(cfg.GetCORSOrigins()) == 0:
		// cors.New rejects a config with every origin disabled
		conf.AllowOriginFunc = func(string) bool { return false }
	default:
		conf.AllowOrigins = cfg.GetCORSOrigins()
	}
	return conf
}
