package dto

import (
	"testing"
	"time"

	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "test@example.com", Password: "password123"},
		},
		{
			name:      "empty email",
			request:   LoginRequest{Password: "password123"},
			wantError: true,
			errorMsg:  "email is required",
		},
		{
			name:      "empty password",
			request:   LoginRequest{Email: "test@example.com"},
			wantError: true,
			errorMsg:  "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				assert.Error(t, err)
				if validationErr, ok := err.(*ValidationError); ok {
					assert.Equal(t, tt.errorMsg, validationErr.Message)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   SignupRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:    "valid request",
			request: SignupRequest{Name: "Test User", Email: "test@example.com", Password: "password123"},
		},
		{
			name:      "blank name",
			request:   SignupRequest{Name: "  ", Email: "test@example.com", Password: "password123"},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name:      "empty email",
			request:   SignupRequest{Name: "Test User", Password: "password123"},
			wantError: true,
			errorMsg:  "email is required",
		},
		{
			name:      "password too short",
			request:   SignupRequest{Name: "Test User", Email: "test@example.com", Password: "12345"},
			wantError: true,
			errorMsg:  "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				assert.Error(t, err)
				if validationErr, ok := err.(*ValidationError); ok {
					assert.Equal(t, tt.errorMsg, validationErr.Message)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyOTPRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		otp       string
		wantError bool
		normal    string
	}{
		{name: "six digits", otp: "482913", normal: "482913"},
		{name: "pasted with spaces", otp: " 482 913 ", normal: "482913"},
		{name: "four digits", otp: "1234", normal: "1234"},
		{name: "too short", otp: "123", wantError: true},
		{name: "too long", otp: "123456789", wantError: true},
		{name: "letters", otp: "12a456", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := VerifyOTPRequest{FlowToken: "token", OTP: tt.otp}
			err := req.Validate()
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.normal, req.OTP)
		})
	}
}

func TestNewUserResponse(t *testing.T) {
	s := model.Session{Email: "a@example.com", Name: "A", Role: model.RoleEmployee, BackendToken: "secret", ExpiresAt: time.Now()}

	assert.Equal(t, UserResponse{Email: "a@example.com", Name: "A", Role: model.RoleEmployee}, NewUserResponse(s))
}
