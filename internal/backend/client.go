// Package backend is a typed client for the courier backend REST API.
//
// The portal never computes prices or stores shipments itself; every such
// operation is a call through this package. Calls carry the caller's request
// ID and backend token, run behind a circuit breaker and record metrics.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/internal/circuitbreaker"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/metrics"
)

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 10 * time.Second

// HeaderRequestID is forwarded so backend logs can be correlated.
const HeaderRequestID = "X-Request-ID"

// Client defines the backend operations the portal uses.
type Client interface {
	DomesticPrice(ctx context.Context, req DomesticPriceRequest) (*PriceResponse, error)
	InternationalPrice(ctx context.Context, req InternationalPriceRequest) (*PriceResponse, error)
	InternationalCalculate(ctx context.Context, req InternationalCalculateRequest) (*PriceResponse, error)
	InternationalOptions(ctx context.Context) ([]model.InternationalOption, error)

	CreateShipment(ctx context.Context, kind model.ShipmentKind, req CreateShipmentRequest) (*CreateShipmentResponse, error)
	GetShipment(ctx context.Context, id string) (*ShipmentRecord, error)
	ListShipments(ctx context.Context, email string) ([]ShipmentRecord, error)

	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	SendOTP(ctx context.Context, req SendOTPRequest) (*AuthResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResponse, error)

	DayEndStats(ctx context.Context) (DayEndStats, error)
	RedeemCode(ctx context.Context, req RedeemCodeRequest) (RedeemResult, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCircuitBreaker runs every call through cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *HTTPClient) {
		c.breaker = cb
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
)

// WithToken attaches the backend bearer token to ctx.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

// WithRequestID attaches the inbound request ID to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func tokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey).(string)
	return s
}

func requestIDFrom(ctx context.Context) string {
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}

// DomesticPrice quotes a domestic shipment.
func (c *HTTPClient) DomesticPrice(ctx context.Context, req DomesticPriceRequest) (*PriceResponse, error) {
	var out PriceResponse
	if err := c.call(ctx, "domestic_price", http.MethodPost, "/api/domestic/price", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InternationalPrice quotes an international shipment for a specific service.
func (c *HTTPClient) InternationalPrice(ctx context.Context, req InternationalPriceRequest) (*PriceResponse, error) {
	var out PriceResponse
	if err := c.call(ctx, "international_price", http.MethodPost, "/api/international/price", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InternationalCalculate quotes an international shipment by destination only.
func (c *HTTPClient) InternationalCalculate(ctx context.Context, req InternationalCalculateRequest) (*PriceResponse, error) {
	var out PriceResponse
	if err := c.call(ctx, "international_calculate", http.MethodPost, "/api/international/calculate", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InternationalOptions lists the destinations and services on offer.
func (c *HTTPClient) InternationalOptions(ctx context.Context) ([]model.InternationalOption, error) {
	var raw json.RawMessage
	if err := c.call(ctx, "international_options", http.MethodGet, "/api/international/options", nil, nil, &raw); err != nil {
		return nil, err
	}

	// Accept both a bare array and {"options": [...]}.
	var opts []model.InternationalOption
	if isJSONArray(raw) {
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, fmt.Errorf("decode international options: %w", err)
		}
		return opts, nil
	}
	var wrapped OptionsResponse
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode international options: %w", err)
	}
	return wrapped.Options, nil
}

// CreateShipment books a shipment of the given kind.
func (c *HTTPClient) CreateShipment(ctx context.Context, kind model.ShipmentKind, req CreateShipmentRequest) (*CreateShipmentResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown shipment kind %q", kind)
	}
	var out CreateShipmentResponse
	endpoint := "create_shipment_" + string(kind)
	if err := c.call(ctx, endpoint, http.MethodPost, "/api/shipments/"+string(kind), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetShipment fetches one shipment with its tracking history.
func (c *HTTPClient) GetShipment(ctx context.Context, id string) (*ShipmentRecord, error) {
	var out ShipmentRecord
	if err := c.call(ctx, "get_shipment", http.MethodGet, "/api/shipments/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListShipments lists the shipments booked by email.
func (c *HTTPClient) ListShipments(ctx context.Context, email string) ([]ShipmentRecord, error) {
	q := url.Values{}
	if email != "" {
		q.Set("email", email)
	}

	var raw json.RawMessage
	if err := c.call(ctx, "list_shipments", http.MethodGet, "/api/shipments", q, nil, &raw); err != nil {
		return nil, err
	}

	var list []ShipmentRecord
	if isJSONArray(raw) {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode shipments: %w", err)
		}
		return list, nil
	}
	var wrapped struct {
		Shipments []ShipmentRecord `json:"shipments"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode shipments: %w", err)
	}
	return wrapped.Shipments, nil
}

// Signup creates a customer account.
func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	return c.auth(ctx, "signup", req)
}

// Login submits credentials.
func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.auth(ctx, "login", req)
}

// SendOTP asks the backend to send a one-time password.
func (c *HTTPClient) SendOTP(ctx context.Context, req SendOTPRequest) (*AuthResponse, error) {
	return c.auth(ctx, "send-otp", req)
}

// VerifyOTP submits a one-time password.
func (c *HTTPClient) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResponse, error) {
	return c.auth(ctx, "verify-otp", req)
}

func (c *HTTPClient) auth(ctx context.Context, action string, body interface{}) (*AuthResponse, error) {
	var out AuthResponse
	endpoint := "auth_" + strings.ReplaceAll(action, "-", "_")
	if err := c.call(ctx, endpoint, http.MethodPost, "/api/auth/"+action, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DayEndStats returns the employee's end-of-day summary.
func (c *HTTPClient) DayEndStats(ctx context.Context) (DayEndStats, error) {
	out := DayEndStats{}
	if err := c.call(ctx, "day_end_stats", http.MethodGet, "/api/employee/day-end-stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RedeemCode redeems a balance code.
func (c *HTTPClient) RedeemCode(ctx context.Context, req RedeemCodeRequest) (RedeemResult, error) {
	out := RedeemResult{}
	if err := c.call(ctx, "redeem_code", http.MethodPost, "/api/employee/redeem-code", nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// call runs one request through the breaker and records its outcome.
func (c *HTTPClient) call(ctx context.Context, endpoint, method, path string, query url.Values, body, out interface{}) error {
	start := time.Now()

	run := func() error {
		return c.do(ctx, endpoint, method, path, query, body, out)
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, run)
	} else {
		err = run()
	}

	duration := time.Since(start)
	metrics.RecordBackendRequest(endpoint, outcome(err), duration)

	if err != nil {
		log.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Str("request_id", requestIDFrom(ctx)).
			Dur("duration", duration).
			Msg("Backend call failed")
		return err
	}

	log.Debug().
		Str("endpoint", endpoint).
		Str("request_id", requestIDFrom(ctx)).
		Dur("duration", duration).
		Msg("Backend call succeeded")
	return nil
}

func (c *HTTPClient) do(ctx context.Context, endpoint, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := requestIDFrom(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4*maxErrorBody))
		return newError(endpoint, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
