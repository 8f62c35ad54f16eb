package backend

import (
	"errors"
	"math"

	"github.com/guttosm/courier-portal/internal/domain/model"
)

// Price field names emitted by the backend.
const (
	FieldTotalPrice   = "total_price"
	FieldTotalWithTax = "total_with_tax_18_percent"
)

var (
	// ErrMissingPrice means a price response carried no total.
	ErrMissingPrice = errors.New("backend price response has no total")
	// ErrAmbiguousPrice means both totals were present and disagree.
	ErrAmbiguousPrice = errors.New("backend price response has conflicting totals")
)

// DomesticPriceRequest is the body of POST /api/domestic/price.
type DomesticPriceRequest struct {
	City   string  `json:"city"`
	State  string  `json:"state"`
	Weight float64 `json:"weight"`
	Mode   string  `json:"mode"`
}

// InternationalPriceRequest is the body of POST /api/international/price.
type InternationalPriceRequest struct {
	Country string  `json:"country"`
	Service string  `json:"service,omitempty"`
	Weight  float64 `json:"weight"`
}

// InternationalCalculateRequest is the body of POST /api/international/calculate.
type InternationalCalculateRequest struct {
	Destination string  `json:"destination"`
	Weight      float64 `json:"weight"`
}

// PriceResponse keeps both total fields the backend may send.
type PriceResponse struct {
	TotalPrice   *float64 `json:"total_price,omitempty"`
	TotalWithTax *float64 `json:"total_with_tax_18_percent,omitempty"`
}

// Total returns the single authoritative total and the field it came from.
// Both fields present with equal values is accepted; different values are
// reported as ErrAmbiguousPrice rather than picking one.
func (p PriceResponse) Total() (float64, string, error) {
	switch {
	case p.TotalPrice != nil && p.TotalWithTax != nil:
		if math.Abs(*p.TotalPrice-*p.TotalWithTax) > 0.005 {
			return 0, "", ErrAmbiguousPrice
		}
		return *p.TotalPrice, FieldTotalPrice, nil
	case p.TotalPrice != nil:
		return *p.TotalPrice, FieldTotalPrice, nil
	case p.TotalWithTax != nil:
		return *p.TotalWithTax, FieldTotalWithTax, nil
	default:
		return 0, "", ErrMissingPrice
	}
}

// OptionsResponse is the body of GET /api/international/options.
type OptionsResponse struct {
	Options []model.InternationalOption `json:"options"`
}

// PackagePayload is the parcel section of a shipment booking.
type PackagePayload struct {
	Weight           float64 `json:"weight"`
	Length           float64 `json:"length"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	VolumetricWeight float64 `json:"volumetric_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`
}

// CreateShipmentRequest is the body of POST /api/shipments/{domestic,international}.
type CreateShipmentRequest struct {
	Email    string            `json:"email,omitempty"`
	Sender   model.Address     `json:"sender"`
	Receiver model.Address     `json:"receiver"`
	Package  PackagePayload    `json:"package"`
	Goods    []model.GoodsItem `json:"goods"`
	Mode     string            `json:"mode,omitempty"`
	Service  string            `json:"service,omitempty"`
	Country  string            `json:"country,omitempty"`
}

// NewCreateShipmentRequest builds the backend payload for a booking.
func NewCreateShipmentRequest(b model.ShipmentBooking) CreateShipmentRequest {
	req := CreateShipmentRequest{
		Email:    b.BookedBy,
		Sender:   b.Sender,
		Receiver: b.Receiver,
		Package: PackagePayload{
			Weight:           b.Weight.Actual,
			Length:           b.Package.LengthCm,
			Width:            b.Package.WidthCm,
			Height:           b.Package.HeightCm,
			VolumetricWeight: b.Weight.Volumetric,
			ChargeableWeight: b.Weight.Chargeable,
		},
		Goods: b.Goods,
		Mode:  b.Mode,
	}
	if b.Kind == model.ShipmentInternational {
		req.Service = b.Service
		req.Country = b.Receiver.Country
	}
	return req
}

// CreateShipmentResponse is the backend's answer to a booking.
type CreateShipmentResponse struct {
	ShipmentIDStr string `json:"shipment_id_str"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

// TrackingEvent is a raw tracking entry. Older records use stage/date/activity
// in place of status/timestamp/description.
type TrackingEvent struct {
	Status      string `json:"status,omitempty"`
	Stage       string `json:"stage,omitempty"`
	Location    string `json:"location,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Activity    string `json:"activity,omitempty"`
}

// ShipmentRecord is a shipment as stored by the backend.
type ShipmentRecord struct {
	ShipmentIDStr    string          `json:"shipment_id_str"`
	Type             string          `json:"type,omitempty"`
	Status           string          `json:"status"`
	Email            string          `json:"email,omitempty"`
	Sender           *model.Address  `json:"sender,omitempty"`
	Receiver         *model.Address  `json:"receiver,omitempty"`
	ChargeableWeight float64         `json:"chargeable_weight,omitempty"`
	TotalPrice       float64         `json:"total_price,omitempty"`
	CreatedAt        string          `json:"created_at,omitempty"`
	TrackingHistory  []TrackingEvent `json:"tracking_history"`
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SendOTPRequest is the body of POST /api/auth/send-otp.
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest is the body of POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// User is the account the backend authenticated.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// AuthResponse is returned by every auth endpoint.
type AuthResponse struct {
	Token                string `json:"token,omitempty"`
	User                 *User  `json:"user,omitempty"`
	RequiresOTP          bool   `json:"requiresOtp,omitempty"`
	RequiresVerification bool   `json:"requiresVerification,omitempty"`
	Message              string `json:"message,omitempty"`
}

// Outcome extracts the flow flags.
func (r AuthResponse) Outcome() model.LoginOutcome {
	return model.LoginOutcome{
		RequiresOTP:          r.RequiresOTP,
		RequiresVerification: r.RequiresVerification,
	}
}

// DayEndStats is passed through unchanged; its fields belong to the backend.
type DayEndStats map[string]interface{}

// RedeemCodeRequest is the body of POST /api/employee/redeem-code.
type RedeemCodeRequest struct {
	Code string `json:"code"`
}

// RedeemResult is passed through unchanged.
type RedeemResult map[string]interface{}
