// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/guttosm/courier-portal/internal/domain/model"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// DimensionsRequest carries parcel measurements as typed into a form.
// Each field accepts a number, a numeric string, an empty string or null.
//
// @Description Parcel weight and dimensions; blank or unparsable fields count as 0
// @Example {"weight_kg": 1, "length_cm": 30, "width_cm": 20, "height_cm": 10}
type DimensionsRequest struct {
	WeightKg FlexFloat `json:"weight_kg" swaggertype:"number" example:"1"`
	LengthCm FlexFloat `json:"length_cm" swaggertype:"number" example:"30"`
	WidthCm  FlexFloat `json:"width_cm" swaggertype:"number" example:"20"`
	HeightCm FlexFloat `json:"height_cm" swaggertype:"number" example:"10"`
} // @name DimensionsRequest

// Dimensions converts the request to the domain type.
func (r DimensionsRequest) Dimensions() model.PackageDimensions {
	return model.PackageDimensions{
		WeightKg: r.WeightKg.Float64(),
		LengthCm: r.LengthCm.Float64(),
		WidthCm:  r.WidthCm.Float64(),
		HeightCm: r.HeightCm.Float64(),
	}
}

// ChargeableWeightRequest is the body of POST /api/weight/chargeable.
// It never fails validation: the calculation is total over its inputs.
type ChargeableWeightRequest struct {
	DimensionsRequest
} // @name ChargeableWeightRequest

// ErrWeightRequired is returned when a priced request has no usable weight.
var ErrWeightRequired = &ValidationError{
	Field:   "weight_kg",
	Message: "weight or dimensions must be greater than zero",
}

// requireWeight rejects parcels whose chargeable weight is zero.
func requireWeight(d DimensionsRequest) error {
	if d.Dimensions().Chargeable().Chargeable <= 0 {
		return ErrWeightRequired
	}
	return nil
}
