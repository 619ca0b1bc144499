package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"tg-info-backend/internal/features/profile/models"
)

const (
	InitDataHeader = "init_data"
	tmaAuthScheme  = "tma "
)

// TelegramInitData rejects requests whose Mini App init data is missing or
// not signed with token. A zero ttl disables the expiry check.
func TelegramInitData(token string, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := initDataFromRequest(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("Unauthorized: Telegram init data required"))
			return
		}

		if err := initdata.Validate(raw, token, ttl); err != nil {
			log.Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Str("path", c.Request.URL.Path).
				Msg("Init data rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("Unauthorized: invalid init data"))
			return
		}

		parsed, err := initdata.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.NewErrorResponse("Malformed init data"))
			return
		}

		log.Debug().Int64("tg_user_id", parsed.User.ID).Msg("Init data accepted")
		c.Next()
	}
}

// initDataFromRequest accepts the init_data header or "Authorization: tma <data>".
func initDataFromRequest(c *gin.Context) string {
	if raw := c.GetHeader(InitDataHeader); raw != "" {
		return raw
	}
	auth := c.GetHeader("Authorization")
	if len(auth) > len(tmaAuthScheme) && strings.EqualFold(auth[:len(tmaAuthScheme)], tmaAuthScheme) {
		return strings.TrimSpace(auth[len(tmaAuthScheme):])
	}
	return ""
}
