package model

import "time"

// Roles known to the portal.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Session is an authenticated portal user.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
	// BackendToken authenticates calls made to the backend on the user's behalf.
	BackendToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsStaff reports whether the session may use employee endpoints.
func (s Session) IsStaff() bool {
	return s.Role == RoleEmployee || s.Role == RoleAdmin
}

// HasRole reports whether the session holds any of roles.
func (s Session) HasRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// LoginFlow is the state carried between the steps of a login.
type LoginFlow struct {
	Email     string
	Name      string
	Stage     FlowStage
	OTPSentAt time.Time
	ExpiresAt time.Time
}

// ResendAvailableAt returns when another OTP may be requested.
func (f LoginFlow) ResendAvailableAt(cooldown time.Duration) time.Time {
	if f.OTPSentAt.IsZero() {
		return time.Time{}
	}
	return f.OTPSentAt.Add(cooldown)
}
