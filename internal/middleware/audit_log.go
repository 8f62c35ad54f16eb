package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/domain/model"
)

// AuditLog records a user action such as a booking, login or code redemption.
func AuditLog(recorder ActivityRecorder, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if recorder == nil {
		return
	}
	entry := newActivityEntry(c, "info", actionType, message)
	entry.Fields = fields
	recorder.Log(entry)
}

// AuditLogError records a failed user action.
func AuditLogError(recorder ActivityRecorder, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if recorder == nil {
		return
	}
	entry := newActivityEntry(c, "error", actionType, message)
	if err != nil {
		entry.Error = err.Error()
	}
	entry.Fields = fields
	recorder.Log(entry)
}

func newActivityEntry(c *gin.Context, level, actionType, message string) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       routePath(c),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	entry.UserEmail = c.GetString(string(UserEmailKey))
	entry.UserRole = c.GetString(string(UserRoleKey))
	return entry
}

// routePath prefers the route template so ids do not leak into log paths.
func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
