package model

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event is not allowed in the current stage.
var ErrInvalidTransition = errors.New("invalid login flow transition")

// FlowStage is a step of the signup/login flow.
type FlowStage string

const (
	// StageCredentials waits for email and password.
	StageCredentials FlowStage = "credentials"
	// StageAwaitingOTP waits for the one-time password sent to the user.
	StageAwaitingOTP FlowStage = "awaiting_otp"
	// StageAwaitingEmailVerification means the account exists but its email is
	// unverified; an OTP must be requested before it can be verified.
	StageAwaitingEmailVerification FlowStage = "awaiting_email_verification"
	// StageAuthenticated is terminal.
	StageAuthenticated FlowStage = "authenticated"
)

// Valid reports whether s is a known stage.
func (s FlowStage) Valid() bool {
	switch s {
	case StageCredentials, StageAwaitingOTP, StageAwaitingEmailVerification, StageAuthenticated:
		return true
	}
	return false
}

// FlowEvent is something that happened at the backend during the flow.
type FlowEvent string

const (
	// EventCredentialsAccepted follows a successful signup or login call.
	EventCredentialsAccepted FlowEvent = "credentials_accepted"
	// EventOTPSent follows a successful send-otp call.
	EventOTPSent FlowEvent = "otp_sent"
	// EventOTPVerified follows a successful verify-otp call.
	EventOTPVerified FlowEvent = "otp_verified"
)

// LoginOutcome carries the flags the backend returns when it accepts credentials.
type LoginOutcome struct {
	RequiresOTP          bool
	RequiresVerification bool
}

// NextStage applies event to the current stage.
//
//	credentials                 --credentials_accepted--> awaiting_otp | awaiting_email_verification | authenticated
//	awaiting_email_verification --otp_sent-->             awaiting_otp
//	awaiting_otp                --otp_sent-->             awaiting_otp
//	awaiting_otp                --otp_verified-->         authenticated
//
// When the backend asks for both OTP and verification, verification wins.
func NextStage(current FlowStage, event FlowEvent, outcome LoginOutcome) (FlowStage, error) {
	switch current {
	case StageCredentials:
		if event == EventCredentialsAccepted {
			switch {
			case outcome.RequiresVerification:
				return StageAwaitingEmailVerification, nil
			case outcome.RequiresOTP:
				return StageAwaitingOTP, nil
			default:
				return StageAuthenticated, nil
			}
		}
	case StageAwaitingEmailVerification:
		if event == EventOTPSent {
			return StageAwaitingOTP, nil
		}
	case StageAwaitingOTP:
		switch event {
		case EventOTPSent:
			return StageAwaitingOTP, nil
		case EventOTPVerified:
			return StageAuthenticated, nil
		}
	}
	return current, fmt.Errorf("%w: %s in stage %s", ErrInvalidTransition, event, current)
}
