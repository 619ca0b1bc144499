package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tg-info-backend/internal/common/errors"
	"tg-info-backend/internal/common/middleware"
	"tg-info-backend/internal/features/profile/models"
	"tg-info-backend/internal/features/profile/service"
)

type ProfileHandler struct {
	service service.ProfileService
	errors  *middleware.ErrorWriter
}

func NewProfileHandler(service service.ProfileService, errorWriter *middleware.ErrorWriter) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		errors:  errorWriter,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/getinfo", h.getInfo)
}

// @Summary Look up a Telegram profile
// @Description Resolves a public username to a user, bot, group or channel profile.
// @Description Without Telegram credentials the response is deterministic demo data.
// @Tags profiles
// @Accept json
// @Produce json
// @Param input body models.LookupRequest true "Username, with or without @"
// @Success 200 {object} models.LookupResponse
// @Failure 400 {object} models.ErrorResponse "No username provided"
// @Failure 401 {object} models.ErrorResponse "Init data rejected"
// @Failure 500 {object} models.ErrorResponse "Lookup failed"
// @Router /api/getinfo [post]
func (h *ProfileHandler) getInfo(c *gin.Context) {
	var req models.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.Abort(c, errors.NewInvalidInputError("username", service.MsgNoUsername).
			WithDetail("bind_error", err.Error()))
		return
	}

	info, err := h.service.Lookup(c.Request.Context(), req.Username)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LookupResponse{
		Status: models.ResponseStatusSuccess,
		Info:   info,
	})
}
