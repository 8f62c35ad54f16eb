package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
)

var (
	// ErrUnknownHSNCode is returned when a booking declares a code missing from the dataset.
	ErrUnknownHSNCode = errors.New("unknown hsn code")
	// ErrInvalidShipmentKind is returned for kinds other than domestic and international.
	ErrInvalidShipmentKind = errors.New("invalid shipment kind")
)

// trackingTimeLayouts are tried in order when parsing backend timestamps.
var trackingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ShipmentService defines the interface for booking and tracking shipments.
type ShipmentService interface {
	Book(ctx context.Context, kind model.ShipmentKind, booking model.ShipmentBooking) (*model.BookingResult, error)
	Get(ctx context.Context, id string) (*model.Shipment, error)
	List(ctx context.Context, email string) ([]model.ShipmentSummary, error)
}

// ShipmentServiceImpl forwards bookings to the backend.
type ShipmentServiceImpl struct {
	backend     backend.Client
	weights     WeightCalculator
	hsn         HSNSearcher
	validateHSN bool
}

// NewShipmentService creates a new shipment service. When validateHSN is true,
// every declared goods code must exist in hsnSearcher's dataset.
func NewShipmentService(client backend.Client, weights WeightCalculator, hsnSearcher HSNSearcher, validateHSN bool) *ShipmentServiceImpl {
	return &ShipmentServiceImpl{
		backend:     client,
		weights:     weights,
		hsn:         hsnSearcher,
		validateHSN: validateHSN && hsnSearcher != nil,
	}
}

// Book recomputes the chargeable weight from the package and forwards the booking.
func (s *ShipmentServiceImpl) Book(ctx context.Context, kind model.ShipmentKind, booking model.ShipmentBooking) (*model.BookingResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShipmentKind, kind)
	}
	booking.Kind = kind
	booking.Weight = s.weights.Calculate(booking.Package)

	if err := s.checkHSNCodes(booking.Goods); err != nil {
		return nil, err
	}

	resp, err := s.backend.CreateShipment(ctx, kind, backend.NewCreateShipmentRequest(booking))
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("shipment_id", resp.ShipmentIDStr).
		Str("kind", string(kind)).
		Str("booked_by", booking.BookedBy).
		Float64("chargeable_weight", booking.Weight.Chargeable).
		Msg("Shipment booked")

	return &model.BookingResult{
		ShipmentID: resp.ShipmentIDStr,
		Status:     resp.Status,
		Weight:     booking.Weight,
	}, nil
}

func (s *ShipmentServiceImpl) checkHSNCodes(goods []model.GoodsItem) error {
	if !s.validateHSN {
		return nil
	}

	for i, item := range goods {
		code := strings.TrimSpace(item.HSNCode)
		if code == "" {
			continue
		}
		_, err := s.hsn.Lookup(code)
		switch {
		case err == nil:
		case errors.Is(err, ErrHSNCodeNotFound):
			return fmt.Errorf("%w: goods[%d] %s", ErrUnknownHSNCode, i, code)
		default:
			log.Warn().Err(err).Msg("HSN index unavailable, skipping booking code validation")
			return nil
		}
	}
	return nil
}

// Get returns a shipment with its tracking history normalised.
func (s *ShipmentServiceImpl) Get(ctx context.Context, id string) (*model.Shipment, error) {
	id = strings.TrimSpace(id)
	rec, err := s.backend.GetShipment(ctx, id)
	if err != nil {
		return nil, err
	}

	shipment := &model.Shipment{
		ID:              rec.ShipmentIDStr,
		Kind:            rec.Type,
		Status:          rec.Status,
		Sender:          rec.Sender,
		Receiver:        rec.Receiver,
		ChargeableKg:    rec.ChargeableWeight,
		TotalPrice:      rec.TotalPrice,
		CreatedAt:       parseTrackingTime(rec.CreatedAt),
		TrackingHistory: normalizeTracking(rec.TrackingHistory),
	}
	if shipment.ID == "" {
		shipment.ID = id
	}
	return shipment, nil
}

// List returns the shipments booked by email.
func (s *ShipmentServiceImpl) List(ctx context.Context, email string) ([]model.ShipmentSummary, error) {
	records, err := s.backend.ListShipments(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	summaries := make([]model.ShipmentSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, model.ShipmentSummary{
			ID:          rec.ShipmentIDStr,
			Status:      rec.Status,
			Kind:        rec.Type,
			Destination: destinationOf(rec),
			CreatedAt:   parseTrackingTime(rec.CreatedAt),
		})
	}
	return summaries, nil
}

func destinationOf(rec backend.ShipmentRecord) string {
	if rec.Receiver == nil {
		return ""
	}
	if rec.Type == string(model.ShipmentInternational) && rec.Receiver.Country != "" {
		return rec.Receiver.Country
	}
	return rec.Receiver.City
}

// normalizeTracking maps raw events to the portal's shape, keeping backend order.
func normalizeTracking(events []backend.TrackingEvent) []model.TrackingEvent {
	out := make([]model.TrackingEvent, 0, len(events))
	for _, e := range events {
		out = append(out, model.TrackingEvent{
			Status:      firstNonEmpty(e.Status, e.Stage),
			Location:    strings.TrimSpace(e.Location),
			Timestamp:   parseTrackingTime(firstNonEmpty(e.Timestamp, e.Date)),
			Description: firstNonEmpty(e.Description, e.Activity),
		})
	}
	return out
}

func parseTrackingTime(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range trackingTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	log.Debug().Str("value", v).Msg("Unparseable tracking timestamp")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
