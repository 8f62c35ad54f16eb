// Package middleware provides session authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/i18n"
	"github.com/guttosm/courier-portal/internal/service"
)

const (
	// SessionKey is the context key holding the *model.Session.
	SessionKey ContextKey = "session"
	// UserEmailKey is the context key holding the session email.
	UserEmailKey ContextKey = "user_email"
	// UserRoleKey is the context key holding the session role.
	UserRoleKey ContextKey = "user_role"
)

// SessionAuth returns a middleware that requires a valid "Bearer <session token>".
func SessionAuth(validator service.SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		session, err := validator.ParseSession(tokenString)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(string(SessionKey), session)
		c.Set(string(UserEmailKey), session.Email)
		c.Set(string(UserRoleKey), session.Role)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), session.BackendToken))

		c.Next()
	}
}

// GetSession returns the session set by SessionAuth.
func GetSession(c *gin.Context) (*model.Session, bool) {
	v, exists := c.Get(string(SessionKey))
	if !exists {
		return nil, false
	}
	s, ok := v.(*model.Session)
	return s, ok && s != nil
}

// abortWithError writes the localised error envelope and stops the chain.
func abortWithError(c *gin.Context, status int, code, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
}
