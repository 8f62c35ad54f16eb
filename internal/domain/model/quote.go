package model

// CurrencyINR is the only currency the backend prices in.
const CurrencyINR = "INR"

// Quote is a priced shipment estimate.
//
// @Description Price quote with the weight it was computed for
// @Example {"kind": "domestic", "weight": {"actual": 1, "volumetric": 1.2, "chargeable": 1.2}, "total": 240, "total_field": "total_price", "currency": "INR"}
type Quote struct {
	Kind        ShipmentKind     `json:"kind" example:"domestic"`
	Weight      ChargeableWeight `json:"weight"`
	Total       float64          `json:"total" example:"240"`
	TotalField  string           `json:"total_field" example:"total_price"`
	Currency    string           `json:"currency" example:"INR"`
	Destination string           `json:"destination,omitempty" example:"Mumbai"`
	Mode        string           `json:"mode,omitempty" example:"surface"`
	Service     string           `json:"service,omitempty"`
}

// InternationalOption is a destination/service pair the backend can price.
type InternationalOption struct {
	Destination string  `json:"destination"`
	Country     string  `json:"country"`
	Service     string  `json:"service"`
	MaxWeight   float64 `json:"max_weight"`
}

// Allows reports whether a parcel of chargeableKg fits under the option's limit.
// A zero limit means unlimited.
func (o InternationalOption) Allows(chargeableKg float64) bool {
	return o.MaxWeight <= 0 || chargeableKg <= o.MaxWeight
}
