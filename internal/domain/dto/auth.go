// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"strings"
	"time"

	"github.com/guttosm/courier-portal/internal/domain/model"
)

// SignupRequest represents the JSON request body for the signup endpoint.
//
// @Description Request to create a customer account
// @Example {"name": "Asha Rao", "email": "asha@example.com", "phone": "+919800000000", "password": "password123"}
type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha Rao"`
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Phone    string `json:"phone,omitempty" example:"+919800000000"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name SignupRequest

// Validate performs custom validation on the signup request.
func (r *SignupRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a user
// @Example {"email": "user@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
	// Password is the user's password.
	Password string `json:"password" binding:"required" example:"password123"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}

// SendOTPRequest asks the backend to (re)send the one-time password.
//
// @Description Request an OTP for the flow identified by the flow token
type SendOTPRequest struct {
	FlowToken string `json:"flow_token" binding:"required"`
} // @name SendOTPRequest

// VerifyOTPRequest submits the one-time password.
//
// @Description Submit the OTP received by email or SMS
// @Example {"flow_token": "eyJhbGciOi...", "otp": "482913"}
type VerifyOTPRequest struct {
	FlowToken string `json:"flow_token" binding:"required"`
	OTP       string `json:"otp" binding:"required" example:"482913"`
} // @name VerifyOTPRequest

// Validate checks the OTP is 4 to 8 digits. Pasted codes may carry spaces.
func (r *VerifyOTPRequest) Validate() error {
	r.OTP = strings.ReplaceAll(strings.TrimSpace(r.OTP), " ", "")
	if len(r.OTP) < 4 || len(r.OTP) > 8 {
		return &ValidationError{Field: "otp", Message: "otp must be 4 to 8 digits"}
	}
	for _, c := range r.OTP {
		if c < '0' || c > '9' {
			return &ValidationError{Field: "otp", Message: "otp must contain only digits"}
		}
	}
	return nil
}

// FlowResponse reports the stage a login flow is in.
// A session is present only once the stage is "authenticated".
//
// @Description Current login flow stage; carries a flow token until authenticated
// @Example {"stage": "awaiting_otp", "flow_token": "eyJhbGciOi...", "email": "user@example.com", "resend_after_seconds": 30}
type FlowResponse struct {
	Stage              model.FlowStage  `json:"stage" swaggertype:"string" example:"awaiting_otp"`
	Email              string           `json:"email" example:"user@example.com"`
	FlowToken          string           `json:"flow_token,omitempty"`
	ResendAfterSeconds int              `json:"resend_after_seconds,omitempty" example:"30"`
	Message            string           `json:"message,omitempty"`
	Session            *SessionResponse `json:"session,omitempty"`
} // @name FlowResponse

// SessionResponse carries a portal session token.
//
// @Description Portal session token and the signed-in user
type SessionResponse struct {
	Token     string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
} // @name SessionResponse

// UserResponse represents user information in API responses.
type UserResponse struct {
	// Email is the user's email address.
	Email string `json:"email" example:"user@example.com"`
	// Name is the user's full name.
	Name string `json:"name,omitempty" example:"John Doe"`
	Role string `json:"role" example:"customer"`
} // @name UserResponse

// NewUserResponse converts a session to its public view.
func NewUserResponse(s model.Session) UserResponse {
	return UserResponse{Email: s.Email, Name: s.Name, Role: s.Role}
}
