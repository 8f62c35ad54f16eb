// Package model defines the core domain entities for the courier portal.
package model

import "math"

// VolumetricDivisor converts cubic centimetres to volumetric kilograms.
// It is the industry-standard air freight factor and is not configurable.
const VolumetricDivisor = 5000.0

// PackageDimensions holds the physical measurements of a parcel.
//
// @Description Parcel weight and dimensions
type PackageDimensions struct {
	// WeightKg is the actual weight on the scale.
	WeightKg float64 `json:"weight_kg" example:"1"`
	LengthCm float64 `json:"length_cm" example:"30"`
	WidthCm  float64 `json:"width_cm" example:"20"`
	HeightCm float64 `json:"height_cm" example:"10"`
}

// Chargeable computes the billable weight of the parcel.
func (d PackageDimensions) Chargeable() ChargeableWeight {
	return ComputeChargeableWeight(d.WeightKg, d.LengthCm, d.WidthCm, d.HeightCm)
}

// HasDimensions reports whether all three dimensions are set.
func (d PackageDimensions) HasDimensions() bool {
	return d.LengthCm > 0 && d.WidthCm > 0 && d.HeightCm > 0
}

// ChargeableWeight is the billing breakdown of a parcel.
//
// @Description Actual, volumetric and chargeable weight in kilograms
// @Example {"actual": 1, "volumetric": 1.2, "chargeable": 1.2}
type ChargeableWeight struct {
	Actual     float64 `json:"actual" example:"1"`
	Volumetric float64 `json:"volumetric" example:"1.2"`
	Chargeable float64 `json:"chargeable" example:"1.2"`
}

// VolumetricGoverns reports whether the volumetric weight sets the price.
func (w ChargeableWeight) VolumetricGoverns() bool {
	return w.Volumetric > w.Actual
}

// ComputeChargeableWeight returns max(actual, L*W*H/5000).
// Negative, NaN and infinite inputs count as 0. The volumetric weight is 0
// unless all three dimensions are positive.
func ComputeChargeableWeight(weightKg, lengthCm, widthCm, heightCm float64) ChargeableWeight {
	actual := clamp(weightKg)
	l, w, h := clamp(lengthCm), clamp(widthCm), clamp(heightCm)

	var volumetric float64
	if l > 0 && w > 0 && h > 0 {
		volumetric = (l * w * h) / VolumetricDivisor
	}

	return ChargeableWeight{
		Actual:     actual,
		Volumetric: volumetric,
		Chargeable: math.Max(actual, volumetric),
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
