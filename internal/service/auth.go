package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/metrics"
	"github.com/guttosm/courier-portal/internal/service/cache"
)

const otpSendsCapacity = 10000

var (
	// ErrOTPCooldown is returned when an OTP is requested again too soon.
	ErrOTPCooldown = errors.New("otp resend cooldown active")
	// ErrMissingBackendToken is returned when the backend authenticates a user
	// without handing back a token.
	ErrMissingBackendToken = errors.New("backend did not return a session token")
)

// CooldownError reports how long to wait before another OTP can be sent.
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: retry in %s", ErrOTPCooldown, e.RetryAfter.Round(time.Second))
}

// Is makes errors.Is(err, ErrOTPCooldown) match.
func (e *CooldownError) Is(target error) bool {
	return target == ErrOTPCooldown
}

// RetryAfterSeconds rounds the wait up to whole seconds.
func (e *CooldownError) RetryAfterSeconds() int {
	secs := int(e.RetryAfter / time.Second)
	if e.RetryAfter%time.Second != 0 {
		secs++
	}
	return secs
}

// FlowResult is the state of a login flow after a step.
// Session is set only once the flow reaches the authenticated stage; until then
// FlowToken carries the flow to the next request.
type FlowResult struct {
	Flow             model.LoginFlow
	FlowToken        string
	ResendAfter      time.Duration
	Message          string
	Session          *model.Session
	SessionToken     string
	SessionExpiresAt time.Time
}

// AuthService drives the signup/login flow against the backend.
type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*FlowResult, error)
	Login(ctx context.Context, email, password string) (*FlowResult, error)
	SendOTP(ctx context.Context, flowToken string) (*FlowResult, error)
	VerifyOTP(ctx context.Context, flowToken, otp string) (*FlowResult, error)
}

// AuthServiceImpl implements AuthService.
// Flow state lives in signed tokens, so any instance can serve any step.
// The resend cooldown is also tracked per email in process, so replaying an
// older flow token does not reset it.
type AuthServiceImpl struct {
	backend  backend.Client
	issuer   *SessionIssuer
	cooldown time.Duration
	now      func() time.Time

	sendMu   sync.Mutex
	otpSends cache.Cache[string, time.Time]
}

// NewAuthService creates a new authentication flow service.
func NewAuthService(client backend.Client, issuer *SessionIssuer, otpCooldown time.Duration) *AuthServiceImpl {
	s := &AuthServiceImpl{
		backend:  client,
		issuer:   issuer,
		cooldown: otpCooldown,
		now:      time.Now,
	}
	if otpCooldown > 0 {
		s.otpSends = cache.NewTTL[string, time.Time]("otp_sends", otpSendsCapacity, otpCooldown)
	}
	return s
}

// Stop releases the resend tracker.
func (s *AuthServiceImpl) Stop() {
	if s != nil && s.otpSends != nil {
		s.otpSends.Stop()
	}
}

// Signup creates an account. A backend that neither authenticates the user nor
// asks for an OTP leaves the flow at the credentials stage, so the user logs in next.
func (s *AuthServiceImpl) Signup(ctx context.Context, name, email, phone, password string) (*FlowResult, error) {
	email = normalizeEmail(email)
	resp, err := s.backend.Signup(ctx, backend.SignupRequest{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Phone:    strings.TrimSpace(phone),
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	flow := model.LoginFlow{Email: email, Name: strings.TrimSpace(name), Stage: model.StageCredentials}
	outcome := resp.Outcome()
	if resp.Token == "" && !outcome.RequiresOTP && !outcome.RequiresVerification {
		log.Info().Str("email", email).Msg("Account created, awaiting login")
		return &FlowResult{Flow: flow, Message: resp.Message}, nil
	}
	return s.acceptCredentials(flow, resp)
}

// Login submits credentials.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*FlowResult, error) {
	email = normalizeEmail(email)
	resp, err := s.backend.Login(ctx, backend.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.acceptCredentials(model.LoginFlow{Email: email, Stage: model.StageCredentials}, resp)
}

// SendOTP asks the backend to send a one-time password, subject to the resend cooldown.
func (s *AuthServiceImpl) SendOTP(ctx context.Context, flowToken string) (*FlowResult, error) {
	flow, err := s.issuer.ParseFlow(flowToken)
	if err != nil {
		return nil, err
	}
	if _, err := model.NextStage(flow.Stage, model.EventOTPSent, model.LoginOutcome{}); err != nil {
		return nil, err
	}

	sentAt, err := s.reserveSend(*flow)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.SendOTP(ctx, backend.SendOTPRequest{Email: flow.Email})
	if err != nil {
		s.releaseSend(flow.Email, sentAt)
		return nil, err
	}

	next, err := s.transition(flow.Stage, model.EventOTPSent, model.LoginOutcome{})
	if err != nil {
		return nil, err
	}
	flow.Stage = next
	flow.OTPSentAt = sentAt
	return s.continueFlow(*flow, resp.Message)
}

// VerifyOTP submits the one-time password and mints a session on success.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, flowToken, otp string) (*FlowResult, error) {
	flow, err := s.issuer.ParseFlow(flowToken)
	if err != nil {
		return nil, err
	}
	if _, err := model.NextStage(flow.Stage, model.EventOTPVerified, model.LoginOutcome{}); err != nil {
		return nil, err
	}

	resp, err := s.backend.VerifyOTP(ctx, backend.VerifyOTPRequest{Email: flow.Email, OTP: otp})
	if err != nil {
		return nil, err
	}

	next, err := s.transition(flow.Stage, model.EventOTPVerified, model.LoginOutcome{})
	if err != nil {
		return nil, err
	}
	flow.Stage = next
	return s.authenticate(*flow, resp)
}

func (s *AuthServiceImpl) acceptCredentials(flow model.LoginFlow, resp *backend.AuthResponse) (*FlowResult, error) {
	next, err := s.transition(flow.Stage, model.EventCredentialsAccepted, resp.Outcome())
	if err != nil {
		return nil, err
	}
	flow.Stage = next
	if resp.User != nil && resp.User.Name != "" {
		flow.Name = resp.User.Name
	}

	switch next {
	case model.StageAuthenticated:
		return s.authenticate(flow, resp)
	case model.StageAwaitingOTP:
		// The backend sends the first OTP itself when it asks for one.
		flow.OTPSentAt = s.now()
		s.recordSend(flow.Email, flow.OTPSentAt)
	}
	return s.continueFlow(flow, resp.Message)
}

func (s *AuthServiceImpl) continueFlow(flow model.LoginFlow, message string) (*FlowResult, error) {
	token, expiresAt, err := s.issuer.IssueFlow(flow)
	if err != nil {
		return nil, err
	}
	flow.ExpiresAt = expiresAt

	return &FlowResult{
		Flow:        flow,
		FlowToken:   token,
		ResendAfter: s.resendWait(flow),
		Message:     message,
	}, nil
}

func (s *AuthServiceImpl) authenticate(flow model.LoginFlow, resp *backend.AuthResponse) (*FlowResult, error) {
	if resp.Token == "" {
		log.Error().Str("email", flow.Email).Msg("Backend authenticated user without a token")
		return nil, ErrMissingBackendToken
	}

	session := model.Session{
		Email:        flow.Email,
		Name:         flow.Name,
		Role:         model.RoleCustomer,
		BackendToken: resp.Token,
	}
	if resp.User != nil {
		if resp.User.Email != "" {
			session.Email = normalizeEmail(resp.User.Email)
		}
		if resp.User.Name != "" {
			session.Name = resp.User.Name
		}
		if resp.User.Role != "" {
			session.Role = strings.ToLower(resp.User.Role)
		}
	}

	token, expiresAt, err := s.issuer.IssueSession(session)
	if err != nil {
		return nil, err
	}
	session.ExpiresAt = expiresAt

	log.Info().
		Str("email", session.Email).
		Str("role", session.Role).
		Msg("User authenticated")

	return &FlowResult{
		Flow:             flow,
		Message:          resp.Message,
		Session:          &session,
		SessionToken:     token,
		SessionExpiresAt: expiresAt,
	}, nil
}

func (s *AuthServiceImpl) transition(current model.FlowStage, event model.FlowEvent, outcome model.LoginOutcome) (model.FlowStage, error) {
	next, err := model.NextStage(current, event, outcome)
	if err != nil {
		return current, err
	}
	metrics.RecordAuthFlowTransition(string(event), string(next))
	return next, nil
}

// reserveSend checks the cooldown against both the token claim and the last
// send recorded for the email, then records now as the send time.
func (s *AuthServiceImpl) reserveSend(flow model.LoginFlow) (time.Time, error) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if wait := s.resendWait(flow); wait > 0 {
		return time.Time{}, &CooldownError{RetryAfter: wait}
	}
	sentAt := s.now()
	s.recordSend(flow.Email, sentAt)
	return sentAt, nil
}

// releaseSend forgets a reservation whose send failed, unless a later send replaced it.
func (s *AuthServiceImpl) releaseSend(email string, sentAt time.Time) {
	if s.otpSends == nil {
		return
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if last, ok := s.otpSends.Get(email); ok && last.Equal(sentAt) {
		s.otpSends.Invalidate(email)
	}
}

func (s *AuthServiceImpl) recordSend(email string, sentAt time.Time) {
	if s.otpSends != nil {
		s.otpSends.Set(email, sentAt)
	}
}

func (s *AuthServiceImpl) resendWait(flow model.LoginFlow) time.Duration {
	if s.otpSends != nil {
		if recorded, ok := s.otpSends.Get(flow.Email); ok && recorded.After(flow.OTPSentAt) {
			flow.OTPSentAt = recorded
		}
	}
	available := flow.ResendAvailableAt(s.cooldown)
	if available.IsZero() {
		return 0
	}
	if wait := available.Sub(s.now()); wait > 0 {
		return wait
	}
	return 0
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
