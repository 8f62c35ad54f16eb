package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/i18n"
	"github.com/guttosm/courier-portal/internal/middleware"
	"github.com/guttosm/courier-portal/internal/service"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// EmployeeHandler serves the staff-only endpoints.
type EmployeeHandler struct {
	employees service.EmployeeService
	recorder  middleware.ActivityRecorder
}

// NewEmployeeHandler creates a new employee handler. recorder may be nil.
func NewEmployeeHandler(employees service.EmployeeService, recorder middleware.ActivityRecorder) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, recorder: recorder}
}

// DayEndStats handles GET /api/employee/day-end-stats requests.
//
// @Summary      End-of-day statistics
// @Description  Returns the backend's end-of-day booking summary unchanged.
// @Tags         Employee
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=map[string]interface{}}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - staff only"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Security     BearerAuth
// @Router       /api/employee/day-end-stats [get]
func (h *EmployeeHandler) DayEndStats(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stats, err := h.employees.DayEndStats(c.Request.Context())
	if err != nil {
		builder.Upstream(err)
		return
	}
	builder.SuccessOK(stats)
}

// RedeemCode handles POST /api/employee/redeem-code requests.
//
// @Summary      Redeem a code
// @Description  Redeems a balance code with the backend. Codes are case-insensitive.
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        request body dto.RedeemCodeRequest true "Code to redeem"
// @Success      200 {object} dto.SuccessResponse{data=map[string]interface{}}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - staff only"
// @Failure      404 {object} dto.ErrorResponse "Unknown code"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Security     BearerAuth
// @Router       /api/employee/redeem-code [post]
func (h *EmployeeHandler) RedeemCode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RedeemCodeRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	result, err := h.employees.RedeemCode(c.Request.Context(), req.Code)
	if err != nil {
		middleware.AuditLogError(h.recorder, c, model.ActionRedeemCode, "Code redemption failed", err, map[string]interface{}{
			"code": req.Code,
		})
		builder.Upstream(err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionRedeemCode, "Code redeemed", map[string]interface{}{
		"code": req.Code,
	})
	builder.SuccessOK(result)
}

// Activity handles GET /api/employee/activity requests.
//
// @Summary      Activity log
// @Description  Lists recorded portal activity, newest first.
// @Tags         Employee
// @Produce      json
// @Param        action query string false "Action type (quote, booking, signup, login, send_otp, verify_otp, redeem_code)"
// @Param        email  query string false "User email"
// @Param        limit  query int    false "Page size (default 50, max 200)"
// @Param        skip   query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActivityResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid paging"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - staff only"
// @Failure      503 {object} dto.ErrorResponse "Activity log disabled or unavailable"
// @Security     BearerAuth
// @Router       /api/employee/activity [get]
func (h *EmployeeHandler) Activity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, err := queryInt(c, "limit", defaultActivityLimit)
	if err != nil || limit < 1 {
		builder.ValidationError(&dto.ValidationError{Field: "limit", Message: "limit must be a positive integer"})
		return
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	skip, err := queryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		builder.ValidationError(&dto.ValidationError{Field: "skip", Message: "skip must be zero or more"})
		return
	}

	opts := model.LogQueryOptions{
		ActionType: c.Query("action"),
		UserEmail:  c.Query("email"),
		Limit:      limit,
		Skip:       skip,
	}

	entries, total, err := h.employees.Activity(c.Request.Context(), opts)
	if err != nil {
		if errors.Is(err, service.ErrActivityLogDisabled) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyActivityLogDisabled, err)
			return
		}
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}

	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.SuccessOK(dto.ActivityResponse{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Skip:    skip,
	})
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
