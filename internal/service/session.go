package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/domain/model"
)

// ErrInvalidToken is returned when a session or flow token is invalid or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	tokenIssuer     = "courier-portal"
	sessionAudience = "session"
	flowAudience    = "login-flow"
)

// SessionClaims are the claims of a portal session token.
type SessionClaims struct {
	Name         string `json:"name,omitempty"`
	Role         string `json:"role"`
	BackendToken string `json:"backend_token,omitempty"`
	jwt.RegisteredClaims
}

// FlowClaims carry a login flow between requests.
type FlowClaims struct {
	Name      string          `json:"name,omitempty"`
	Stage     model.FlowStage `json:"stage"`
	OTPSentAt int64           `json:"otp_sent_at,omitempty"`
	jwt.RegisteredClaims
}

// SessionValidator parses session tokens.
type SessionValidator interface {
	ParseSession(tokenString string) (*model.Session, error)
}

// SessionConfig holds configuration for the session issuer.
type SessionConfig struct {
	Secret     string
	SessionTTL time.Duration
	FlowTTL    time.Duration
}

// NewSessionConfigFromConfig creates a SessionConfig from config.SessionConfig.
func NewSessionConfigFromConfig(cfg config.SessionConfig) SessionConfig {
	return SessionConfig{
		Secret:     cfg.Secret,
		SessionTTL: cfg.SessionTTL,
		FlowTTL:    cfg.FlowTTL,
	}
}

// SessionIssuer signs and verifies session and flow tokens (HS256).
// The two token kinds use different audiences so one can never stand in for the other.
type SessionIssuer struct {
	secret     []byte
	sessionTTL time.Duration
	flowTTL    time.Duration
	now        func() time.Time
}

// NewSessionIssuer creates a new SessionIssuer.
func NewSessionIssuer(cfg SessionConfig) *SessionIssuer {
	return &SessionIssuer{
		secret:     []byte(cfg.Secret),
		sessionTTL: cfg.SessionTTL,
		flowTTL:    cfg.FlowTTL,
		now:        time.Now,
	}
}

// IssueSession signs a session token for s and returns it with its expiry.
func (i *SessionIssuer) IssueSession(s model.Session) (string, time.Time, error) {
	if strings.TrimSpace(s.Email) == "" {
		return "", time.Time{}, errors.New("session email is empty")
	}
	role := s.Role
	if role == "" {
		role = model.RoleCustomer
	}

	now := i.now()
	expiresAt := now.Add(i.sessionTTL)
	claims := &SessionClaims{
		Name:             s.Name,
		Role:             role,
		BackendToken:     s.BackendToken,
		RegisteredClaims: i.registered(s.Email, sessionAudience, now, expiresAt),
	}

	token, err := i.sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// ParseSession validates a session token and returns the session it carries.
func (i *SessionIssuer) ParseSession(tokenString string) (*model.Session, error) {
	claims := &SessionClaims{}
	if err := i.parse(tokenString, claims, sessionAudience); err != nil {
		return nil, err
	}

	s := &model.Session{
		Email:        claims.Subject,
		Name:         claims.Name,
		Role:         claims.Role,
		BackendToken: claims.BackendToken,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// IssueFlow signs a flow token for f.
func (i *SessionIssuer) IssueFlow(f model.LoginFlow) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.flowTTL)
	claims := &FlowClaims{
		Name:             f.Name,
		Stage:            f.Stage,
		RegisteredClaims: i.registered(f.Email, flowAudience, now, expiresAt),
	}
	if !f.OTPSentAt.IsZero() {
		claims.OTPSentAt = f.OTPSentAt.Unix()
	}

	token, err := i.sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign flow token: %w", err)
	}
	return token, expiresAt, nil
}

// ParseFlow validates a flow token and returns the flow state it carries.
func (i *SessionIssuer) ParseFlow(tokenString string) (*model.LoginFlow, error) {
	claims := &FlowClaims{}
	if err := i.parse(tokenString, claims, flowAudience); err != nil {
		return nil, err
	}
	if !claims.Stage.Valid() {
		return nil, ErrInvalidToken
	}

	f := &model.LoginFlow{
		Email: claims.Subject,
		Name:  claims.Name,
		Stage: claims.Stage,
	}
	if claims.OTPSentAt > 0 {
		f.OTPSentAt = time.Unix(claims.OTPSentAt, 0)
	}
	if claims.ExpiresAt != nil {
		f.ExpiresAt = claims.ExpiresAt.Time
	}
	return f, nil
}

func (i *SessionIssuer) registered(subject, audience string, now, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strings.ToLower(strings.TrimSpace(subject)),
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
}

func (i *SessionIssuer) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *SessionIssuer) parse(tokenString string, claims jwt.Claims, audience string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return ErrInvalidToken
	}
	return nil
}
