// Package service contains the business logic for the courier portal.
package service

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/metrics"
)

// WeightCalculator defines the interface for chargeable weight calculation.
type WeightCalculator interface {
	Calculate(dims model.PackageDimensions) model.ChargeableWeight
}

// WeightService computes chargeable weights and records which basis governed.
type WeightService struct{}

// NewWeightService creates a new WeightService.
func NewWeightService() *WeightService {
	return &WeightService{}
}

// Calculate returns the chargeable weight of a parcel.
func (s *WeightService) Calculate(dims model.PackageDimensions) model.ChargeableWeight {
	w := dims.Chargeable()

	basis := "actual"
	if w.VolumetricGoverns() {
		basis = "volumetric"
	}
	metrics.RecordWeightCalculation(basis)

	log.Debug().
		Float64("actual", w.Actual).
		Float64("volumetric", w.Volumetric).
		Float64("chargeable", w.Chargeable).
		Str("basis", basis).
		Msg("Chargeable weight calculated")

	return w
}
