package dto

import "strings"

// DomesticPriceRequest is the body of POST /api/domestic/price.
//
// @Description Domestic price quote request
// @Example {"city": "Mumbai", "state": "Maharashtra", "mode": "surface", "weight_kg": 1, "length_cm": 30, "width_cm": 20, "height_cm": 10}
type DomesticPriceRequest struct {
	City  string `json:"city" binding:"required" example:"Mumbai"`
	State string `json:"state" binding:"required" example:"Maharashtra"`
	// Mode is the transport mode; defaults to "surface".
	Mode string `json:"mode" example:"surface"`
	DimensionsRequest
} // @name DomesticPriceRequest

// Validate performs custom validation on the request.
func (r *DomesticPriceRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return &ValidationError{Field: "city", Message: "city is required"}
	}
	if strings.TrimSpace(r.State) == "" {
		return &ValidationError{Field: "state", Message: "state is required"}
	}
	return requireWeight(r.DimensionsRequest)
}

// InternationalPriceRequest is the body of POST /api/international/price.
// Without a service the backend's generic calculator is used.
//
// @Description International price quote request
// @Example {"country": "United Kingdom", "service": "express", "weight_kg": 2}
type InternationalPriceRequest struct {
	Country string `json:"country" binding:"required" example:"United Kingdom"`
	Service string `json:"service,omitempty" example:"express"`
	DimensionsRequest
} // @name InternationalPriceRequest

// Validate performs custom validation on the request.
func (r *InternationalPriceRequest) Validate() error {
	if strings.TrimSpace(r.Country) == "" {
		return &ValidationError{Field: "country", Message: "country is required"}
	}
	return requireWeight(r.DimensionsRequest)
}
