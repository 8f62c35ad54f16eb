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

// AuthHandler provides HTTP handlers for the signup and OTP login flow.
type AuthHandler struct {
	authService service.AuthService
	recorder    middleware.ActivityRecorder
}

// NewAuthHandler creates a new authentication handler. recorder may be nil.
func NewAuthHandler(authService service.AuthService, recorder middleware.ActivityRecorder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		recorder:    recorder,
	}
}

// Signup handles POST /api/auth/signup requests.
//
// @Summary      Create an account
// @Description  Creates a customer account with the courier backend. Depending on the backend the flow continues at OTP entry, email verification, or the user is signed in directly; otherwise the user logs in next.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "Account details"
// @Success      201 {object} dto.SuccessResponse{data=dto.FlowResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Account already exists"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SignupRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		middleware.AuditLogError(h.recorder, c, model.ActionSignup, "Signup failed", err, map[string]interface{}{
			"email": req.Email,
		})
		h.flowError(c, builder, err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionSignup, "Account created", map[string]interface{}{
		"email": result.Flow.Email,
		"stage": string(result.Flow.Stage),
	})

	resp := newFlowResponse(result)
	if resp.Message == "" && result.Flow.Stage == model.StageCredentials {
		resp.Message = i18n.GetTranslator().Translate(i18n.SuccessKeyAccountCreated, i18n.GetLocale(c))
	}
	builder.SuccessCreated(resp)
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Log in
// @Description  Submits credentials. The response stage tells the client what comes next: awaiting_otp, awaiting_email_verification, or authenticated with a session token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.FlowResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AuditLogError(h.recorder, c, model.ActionLogin, "Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		h.flowError(c, builder, err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionLogin, "Credentials accepted", map[string]interface{}{
		"email": result.Flow.Email,
		"stage": string(result.Flow.Stage),
	})
	builder.SuccessOK(newFlowResponse(result))
}

// SendOTP handles POST /api/auth/send-otp requests.
//
// @Summary      Send or resend the OTP
// @Description  Asks the backend to send a one-time password for the flow. Resending is limited by a cooldown; a 429 carries retry_after_seconds in details and a Retry-After header.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SendOTPRequest true "Flow token"
// @Success      200 {object} dto.SuccessResponse{data=dto.FlowResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Invalid or expired flow token"
// @Failure      409 {object} dto.ErrorResponse "The flow is not waiting for an OTP"
// @Failure      429 {object} dto.ErrorResponse "Resend cooldown active"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Router       /api/auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SendOTPRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	result, err := h.authService.SendOTP(c.Request.Context(), req.FlowToken)
	if err != nil {
		h.flowError(c, builder, err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionSendOTP, "OTP sent", map[string]interface{}{
		"email": result.Flow.Email,
	})

	resp := newFlowResponse(result)
	if resp.Message == "" {
		resp.Message = i18n.GetTranslator().Translate(i18n.SuccessKeyOTPSent, i18n.GetLocale(c))
	}
	builder.SuccessOK(resp)
}

// VerifyOTP handles POST /api/auth/verify-otp requests.
//
// @Summary      Verify the OTP
// @Description  Submits the one-time password. On success the flow is authenticated and a session token is returned.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.VerifyOTPRequest true "Flow token and OTP"
// @Success      200 {object} dto.SuccessResponse{data=dto.FlowResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or wrong OTP"
// @Failure      401 {object} dto.ErrorResponse "Invalid or expired flow token"
// @Failure      409 {object} dto.ErrorResponse "The flow is not waiting for an OTP"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.VerifyOTPRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	result, err := h.authService.VerifyOTP(c.Request.Context(), req.FlowToken, req.OTP)
	if err != nil {
		middleware.AuditLogError(h.recorder, c, model.ActionVerifyOTP, "OTP verification failed", err, nil)
		h.flowError(c, builder, err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionVerifyOTP, "User authenticated", map[string]interface{}{
		"email": result.Flow.Email,
	})
	builder.SuccessOK(newFlowResponse(result))
}

// Session handles GET /api/auth/session requests.
//
// @Summary      Current session
// @Description  Returns the signed-in user of the bearer session token.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.UserResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session"
// @Security     BearerAuth
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := middleware.GetSession(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	builder.SuccessOK(dto.NewUserResponse(*session))
}

func (h *AuthHandler) flowError(c *gin.Context, builder *ResponseBuilder, err error) {
	var cooldown *service.CooldownError
	switch {
	case errors.As(err, &cooldown):
		seconds := strconv.Itoa(cooldown.RetryAfterSeconds())
		c.Header("Retry-After", seconds)
		message := i18n.GetTranslator().Translate(i18n.ErrKeyOTPCooldown, i18n.GetLocale(c))
		builder.write(http.StatusTooManyRequests, message, map[string]string{"retry_after_seconds": seconds}, nil)
	case errors.Is(err, service.ErrInvalidToken):
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, nil)
	case errors.Is(err, model.ErrInvalidTransition):
		builder.Error(http.StatusConflict, i18n.ErrKeyInvalidFlowStep, err)
	case errors.Is(err, service.ErrMissingBackendToken):
		builder.Error(http.StatusBadGateway, i18n.ErrKeyUpstream, err)
	default:
		builder.Upstream(err)
	}
}

func newFlowResponse(result *service.FlowResult) dto.FlowResponse {
	resp := dto.FlowResponse{
		Stage:     result.Flow.Stage,
		Email:     result.Flow.Email,
		FlowToken: result.FlowToken,
		Message:   result.Message,
	}
	if result.ResendAfter > 0 {
		cooldown := service.CooldownError{RetryAfter: result.ResendAfter}
		resp.ResendAfterSeconds = cooldown.RetryAfterSeconds()
	}
	if result.Session != nil {
		resp.Email = result.Session.Email
		resp.Session = &dto.SessionResponse{
			Token:     result.SessionToken,
			ExpiresAt: result.SessionExpiresAt,
			User:      dto.NewUserResponse(*result.Session),
		}
	}
	return resp
}
