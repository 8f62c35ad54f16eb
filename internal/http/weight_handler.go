package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/service"
)

// WeightHandler serves the chargeable-weight calculator.
type WeightHandler struct {
	weights service.WeightCalculator
}

// NewWeightHandler creates a new WeightHandler.
func NewWeightHandler(weights service.WeightCalculator) *WeightHandler {
	return &WeightHandler{weights: weights}
}

// Chargeable handles POST /api/weight/chargeable requests.
//
// @Summary      Chargeable weight
// @Description  Returns the actual, volumetric (L×W×H / 5000) and chargeable weight of a parcel. Fields may be numbers, numeric strings, empty strings or null; anything unparsable or negative counts as 0.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request body dto.ChargeableWeightRequest true "Parcel weight and dimensions"
// @Success      200 {object} dto.SuccessResponse{data=model.ChargeableWeight}
// @Failure      400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/weight/chargeable [post]
func (h *WeightHandler) Chargeable(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ChargeableWeightRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	builder.SuccessOK(h.weights.Calculate(req.Dimensions()))
}
