package http

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tg-info-backend/docs"
	"tg-info-backend/internal/common/middleware"
	profilehttp "tg-info-backend/internal/features/profile/delivery/http"
	"tg-info-backend/internal/features/profile/service"
)

type RouterConfig struct {
	Debug  bool
	Origin string

	PhotoDir       string
	PhotoURLPrefix string

	// InitDataAuth guards /api with Mini App init data signed by BotToken.
	InitDataAuth bool
	BotToken     string
	InitDataTTL  time.Duration

	// Cache is nil when Redis is disabled.
	Cache profilehttp.CacheChecker
	Now   func() time.Time
}

// NewRouter builds the gin engine with middleware and every route wired.
func NewRouter(cfg RouterConfig, svc service.ProfileService, log zerolog.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(cors.New(corsConfig(cfg.Origin)))
	router.NoRoute(middleware.NotFound())

	if cfg.PhotoDir != "" && cfg.PhotoURLPrefix != "" {
		router.Static(cfg.PhotoURLPrefix, cfg.PhotoDir)
	}

	profilehttp.NewHealthHandler(svc, cfg.Cache, cfg.Now).RegisterRoutes(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	if cfg.InitDataAuth {
		api.Use(middleware.TelegramInitData(cfg.BotToken, cfg.InitDataTTL, log))
	}
	profilehttp.NewProfileHandler(svc, middleware.NewErrorWriter(log)).RegisterRoutes(api)

	return router
}

func corsConfig(origin string) cors.Config {
	c := cors.DefaultConfig()
	if origin == "" || origin == "*" {
		c.AllowAllOrigins = true
	} else {
		origins := strings.Split(origin, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		c.AllowOrigins = origins
	}
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.InitDataHeader, middleware.RequestIDHeader}
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	return c
}
