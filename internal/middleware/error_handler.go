package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/i18n"
	"github.com/guttosm/courier-portal/internal/logger"
)

// ErrorHandler returns a middleware that turns errors attached with c.Error into
// the error envelope. Backend failures keep their mapped status: a 4xx rejection
// passes through with the backend's message, an open circuit is 503, a timeout
// is 504 and anything else is 502. Errors are only rendered if nothing was written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)
		locale := i18n.GetLocale(c)
		status := backend.StatusCode(err)

		log := logger.WithRequest(requestID)
		event := log.Error()
		if status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Err(err).
			Int("status_code", status).
			Str("path", routePath(c)).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := backend.ClientMessage(err)
		if message == "" {
			message = i18n.GetTranslator().Translate(errorMessageKey(status), locale)
		}
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
	}
}

func errorMessageKey(status int) string {
	switch status {
	case http.StatusServiceUnavailable:
		return i18n.ErrKeyServiceUnavailable
	case http.StatusGatewayTimeout:
		return i18n.ErrKeyTimeout
	case http.StatusBadGateway:
		return i18n.ErrKeyUpstream
	default:
		return i18n.ErrKeyInternalError
	}
}
