package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/i18n"
	"github.com/guttosm/courier-portal/internal/middleware"
	"github.com/guttosm/courier-portal/internal/service"
)

// QuoteHandler serves domestic and international price quotes.
type QuoteHandler struct {
	quotes   service.QuoteService
	recorder middleware.ActivityRecorder
}

// NewQuoteHandler creates a new QuoteHandler. recorder may be nil.
func NewQuoteHandler(quotes service.QuoteService, recorder middleware.ActivityRecorder) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, recorder: recorder}
}

// DomesticPrice handles POST /api/domestic/price requests.
//
// @Summary      Domestic price quote
// @Description  Computes the chargeable weight and asks the courier backend for a price to the destination city.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.DomesticPriceRequest true "Destination and parcel"
// @Success      200 {object} dto.SuccessResponse{data=model.Quote}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Backend failed or returned an unusable price"
// @Failure      503 {object} dto.ErrorResponse "Backend circuit open"
// @Router       /api/domestic/price [post]
func (h *QuoteHandler) DomesticPrice(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.DomesticPriceRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	quote, err := h.quotes.DomesticQuote(c.Request.Context(), service.DomesticQuoteInput{
		City:       req.City,
		State:      req.State,
		Mode:       req.Mode,
		Dimensions: req.Dimensions(),
	})
	if err != nil {
		h.quoteError(builder, err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionQuote, "Domestic quote", map[string]interface{}{
		"city":       quote.Destination,
		"mode":       quote.Mode,
		"chargeable": quote.Weight.Chargeable,
		"total":      quote.Total,
	})
	builder.SuccessOK(quote)
}

// InternationalPrice handles POST /api/international/price requests.
//
// @Summary      International price quote
// @Description  Computes the chargeable weight and prices it for the destination country. With a service the service rate is used, otherwise the backend's generic calculator. Parcels over the service's weight limit are rejected.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.InternationalPriceRequest true "Destination, service and parcel"
// @Success      200 {object} dto.SuccessResponse{data=model.Quote}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or weight over the service limit"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Backend failed or returned an unusable price"
// @Failure      503 {object} dto.ErrorResponse "Backend circuit open"
// @Router       /api/international/price [post]
func (h *QuoteHandler) InternationalPrice(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.InternationalPriceRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	quote, err := h.quotes.InternationalQuote(c.Request.Context(), service.InternationalQuoteInput{
		Country:    req.Country,
		Service:    req.Service,
		Dimensions: req.Dimensions(),
	})
	if err != nil {
		h.quoteError(builder, err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionQuote, "International quote", map[string]interface{}{
		"country":    quote.Destination,
		"service":    quote.Service,
		"chargeable": quote.Weight.Chargeable,
		"total":      quote.Total,
	})
	builder.SuccessOK(quote)
}

// InternationalOptions handles GET /api/international/options requests.
//
// @Summary      International services
// @Description  Lists the destination/service pairs the backend can price, with their weight limits.
// @Tags         Quotes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.InternationalOption}
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Failure      503 {object} dto.ErrorResponse "Backend circuit open"
// @Router       /api/international/options [get]
func (h *QuoteHandler) InternationalOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	options, err := h.quotes.InternationalOptions(c.Request.Context())
	if err != nil {
		builder.Upstream(err)
		return
	}

	builder.SuccessOK(options)
}

func (h *QuoteHandler) quoteError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrWeightExceedsLimit):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyWeightExceedsLimit, nil)
	case errors.Is(err, backend.ErrMissingPrice), errors.Is(err, backend.ErrAmbiguousPrice):
		builder.Error(http.StatusBadGateway, i18n.ErrKeyPriceUnavailable, err)
	default:
		builder.Upstream(err)
	}
}
