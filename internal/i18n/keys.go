// Package i18n provides internationalization support for the courier portal.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired session or flow token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a session token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyUpstream indicates the backend returned an error or could not be reached.
	ErrKeyUpstream = "error.upstream"
	// ErrKeyServiceUnavailable indicates a dependency is temporarily unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyHSNUnavailable indicates the HSN index could not be built.
	ErrKeyHSNUnavailable = "error.hsn_unavailable"
	// ErrKeyUnknownHSNCode indicates a booking declared a code that does not exist.
	ErrKeyUnknownHSNCode = "error.unknown_hsn_code"
	// ErrKeyWeightExceedsLimit indicates the parcel is too heavy for the service.
	ErrKeyWeightExceedsLimit = "error.weight_exceeds_limit"
	// ErrKeyPriceUnavailable indicates the backend price could not be read unambiguously.
	ErrKeyPriceUnavailable = "error.price_unavailable"
	// ErrKeyOTPCooldown indicates an OTP was requested again too soon.
	ErrKeyOTPCooldown = "error.otp_cooldown"
	// ErrKeyInvalidFlowStep indicates a login step that the current stage does not allow.
	ErrKeyInvalidFlowStep = "error.invalid_flow_step"
	// ErrKeyActivityLogDisabled indicates persistent activity logging is off.
	ErrKeyActivityLogDisabled = "error.activity_log_disabled"
	// ErrKeyIdempotencyKeyReused indicates an Idempotency-Key was reused with a different request.
	ErrKeyIdempotencyKeyReused = "error.idempotency_key_reused"
)

// Success message translation keys.
const (
	// SuccessKeyOTPSent indicates an OTP was sent.
	SuccessKeyOTPSent = "success.otp_sent"
	// SuccessKeyShipmentBooked indicates a shipment was booked.
	SuccessKeyShipmentBooked = "success.shipment_booked"
	// SuccessKeyAccountCreated indicates a signup that must be followed by a login.
	SuccessKeyAccountCreated = "success.account_created"
)
