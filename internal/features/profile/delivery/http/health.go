package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tg-info-backend/internal/features/profile/models"
	"tg-info-backend/internal/features/profile/service"
)

const (
	ServiceName   = "Telegram Info Dashboard"
	healthyStatus = "healthy"
	modeDemo      = "demo"
	modeLive      = "live"
)

// CacheChecker reports whether the shared cache answers.
type CacheChecker interface {
	Healthy(ctx context.Context) bool
}

type HealthHandler struct {
	service service.ProfileService
	cache   CacheChecker
	now     func() time.Time
}

// NewHealthHandler builds the handler. cache may be nil when caching is off.
func NewHealthHandler(service service.ProfileService, cache CacheChecker, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{
		service: service,
		cache:   cache,
		now:     now,
	}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", h.health)
	router.GET("/test", h.test)
}

// @Summary Health check
// @Tags service
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) health(c *gin.Context) {
	live := h.service.LiveMode()
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:            healthyStatus,
		Service:           ServiceName,
		ClientInitialized: live,
		DemoMode:          !live,
		CacheEnabled:      h.cache != nil && h.cache.Healthy(c.Request.Context()),
		Timestamp:         h.now().UTC().Format(time.RFC3339),
	})
}

// @Summary Smoke test
// @Tags service
// @Produce json
// @Success 200 {object} models.TestResponse
// @Router /test [get]
func (h *HealthHandler) test(c *gin.Context) {
	mode := modeDemo
	if h.service.LiveMode() {
		mode = modeLive
	}
	c.JSON(http.StatusOK, models.TestResponse{
		Message:   ServiceName + " is running!",
		Mode:      mode,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
