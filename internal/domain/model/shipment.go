package model

import "time"

// ShipmentKind distinguishes domestic from international bookings.
type ShipmentKind string

const (
	ShipmentDomestic      ShipmentKind = "domestic"
	ShipmentInternational ShipmentKind = "international"
)

// Valid reports whether k is a known kind.
func (k ShipmentKind) Valid() bool {
	return k == ShipmentDomestic || k == ShipmentInternational
}

// Address is a sender or receiver.
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Line1   string `json:"address_line1"`
	Line2   string `json:"address_line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

// GoodsItem is one declared line of a shipment's contents.
type GoodsItem struct {
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code,omitempty"`
	Quantity    int     `json:"quantity"`
	Value       float64 `json:"value"`
}

// ShipmentBooking is a validated booking ready to be forwarded.
type ShipmentBooking struct {
	Kind     ShipmentKind      `json:"kind"`
	Sender   Address           `json:"sender"`
	Receiver Address           `json:"receiver"`
	Package  PackageDimensions `json:"package"`
	Weight   ChargeableWeight  `json:"weight"`
	Goods    []GoodsItem       `json:"goods"`
	// Mode is the domestic service mode, e.g. "surface" or "air".
	Mode string `json:"mode,omitempty"`
	// Service is the international service name.
	Service string `json:"service,omitempty"`
	// BookedBy is the session email that placed the booking.
	BookedBy string `json:"booked_by,omitempty"`
}

// DeclaredValue sums quantity * value over all goods.
func (b ShipmentBooking) DeclaredValue() float64 {
	var total float64
	for _, g := range b.Goods {
		q := g.Quantity
		if q <= 0 {
			q = 1
		}
		total += float64(q) * g.Value
	}
	return total
}

// BookingResult is what the backend returns for a new shipment.
//
// @Description Booked shipment identifier and status
// @Example {"shipment_id": "SHP123456", "status": "booked"}
type BookingResult struct {
	ShipmentID string           `json:"shipment_id" example:"SHP123456"`
	Status     string           `json:"status" example:"booked"`
	Weight     ChargeableWeight `json:"weight"`
}

// TrackingEvent is one normalised entry of a shipment's tracking history.
type TrackingEvent struct {
	Status      string     `json:"status"`
	Location    string     `json:"location,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Shipment is a shipment with its tracking history in backend order.
type Shipment struct {
	ID              string          `json:"shipment_id"`
	Kind            string          `json:"kind,omitempty"`
	Status          string          `json:"status"`
	Sender          *Address        `json:"sender,omitempty"`
	Receiver        *Address        `json:"receiver,omitempty"`
	ChargeableKg    float64         `json:"chargeable_weight,omitempty"`
	TotalPrice      float64         `json:"total_price,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
	TrackingHistory []TrackingEvent `json:"tracking_history"`
}

// LatestEvent returns the last tracking event, if any.
func (s Shipment) LatestEvent() (TrackingEvent, bool) {
	if len(s.TrackingHistory) == 0 {
		return TrackingEvent{}, false
	}
	return s.TrackingHistory[len(s.TrackingHistory)-1], true
}

// ShipmentSummary is a row of a shipment listing.
type ShipmentSummary struct {
	ID          string     `json:"shipment_id"`
	Status      string     `json:"status"`
	Kind        string     `json:"kind,omitempty"`
	Destination string     `json:"destination,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
