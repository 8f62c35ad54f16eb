package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/i18n"
	"github.com/guttosm/courier-portal/internal/middleware"
	"github.com/guttosm/courier-portal/internal/service"
)

// ShipmentHandler serves bookings, tracking and shipment listings.
type ShipmentHandler struct {
	shipments service.ShipmentService
	recorder  middleware.ActivityRecorder
}

// NewShipmentHandler creates a new ShipmentHandler. recorder may be nil.
func NewShipmentHandler(shipments service.ShipmentService, recorder middleware.ActivityRecorder) *ShipmentHandler {
	return &ShipmentHandler{shipments: shipments, recorder: recorder}
}

// BookDomestic handles POST /api/shipments/domestic requests.
//
// @Summary      Book a domestic shipment
// @Description  Validates the booking, computes the chargeable weight and forwards it to the courier backend. Repeating a request with the same Idempotency-Key replays the first response.
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.BookShipmentRequest true "Booking"
// @Success      201 {object} dto.SuccessResponse{data=dto.BookingResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown HSN code"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session"
// @Failure      409 {object} dto.ErrorResponse "Idempotency key reused with a different body"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Failure      503 {object} dto.ErrorResponse "Backend circuit open"
// @Security     BearerAuth
// @Router       /api/shipments/domestic [post]
func (h *ShipmentHandler) BookDomestic(c *gin.Context) {
	h.book(c, model.ShipmentDomestic)
}

// BookInternational handles POST /api/shipments/international requests.
//
// @Summary      Book an international shipment
// @Description  Like the domestic booking, but the receiver country and a service are required.
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.BookShipmentRequest true "Booking"
// @Success      201 {object} dto.SuccessResponse{data=dto.BookingResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown HSN code"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session"
// @Failure      409 {object} dto.ErrorResponse "Idempotency key reused with a different body"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Failure      503 {object} dto.ErrorResponse "Backend circuit open"
// @Security     BearerAuth
// @Router       /api/shipments/international [post]
func (h *ShipmentHandler) BookInternational(c *gin.Context) {
	h.book(c, model.ShipmentInternational)
}

func (h *ShipmentHandler) book(c *gin.Context, kind model.ShipmentKind) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.BookShipmentRequest](c)
	if err == nil {
		err = req.ValidateFor(kind)
	}
	if err != nil {
		builder.ValidationError(err)
		return
	}

	session, ok := middleware.GetSession(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	result, err := h.shipments.Book(c.Request.Context(), kind, req.Booking(kind, session.Email))
	if err != nil {
		middleware.AuditLogError(h.recorder, c, model.ActionBooking, "Shipment booking failed", err, map[string]interface{}{
			"kind": string(kind),
		})
		if errors.Is(err, service.ErrUnknownHSNCode) {
			builder.ErrorWithMessage(http.StatusBadRequest,
				i18n.GetTranslator().Translate(i18n.ErrKeyUnknownHSNCode, i18n.GetLocale(c)), err)
			return
		}
		builder.Upstream(err)
		return
	}

	middleware.AuditLog(h.recorder, c, model.ActionBooking, "Shipment booked", map[string]interface{}{
		"shipment_id": result.ShipmentID,
		"kind":        string(kind),
		"chargeable":  result.Weight.Chargeable,
	})

	c.Header("Location", "/api/shipments/"+result.ShipmentID)
	builder.SuccessCreated(dto.BookingResponse{
		BookingResult: *result,
		Message:       i18n.GetTranslator().Translate(i18n.SuccessKeyShipmentBooked, i18n.GetLocale(c)),
	})
}

// Get handles GET /api/shipments/:id requests.
//
// @Summary      Track a shipment
// @Description  Returns a shipment with its tracking history in backend order. Tracking entries are normalised to status, location, timestamp and description.
// @Tags         Shipments
// @Produce      json
// @Param        id path string true "Shipment ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Shipment}
// @Failure      404 {object} dto.ErrorResponse "Unknown shipment"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Failure      503 {object} dto.ErrorResponse "Backend circuit open"
// @Router       /api/shipments/{id} [get]
func (h *ShipmentHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	shipment, err := h.shipments.Get(c.Request.Context(), id)
	if err != nil {
		builder.Upstream(err)
		return
	}

	builder.SuccessOK(shipment)
}

// List handles GET /api/shipments requests.
//
// @Summary      List shipments
// @Description  Customers see their own shipments. Employees and admins may pass an email to see another customer's shipments.
// @Tags         Shipments
// @Produce      json
// @Param        email query string false "Customer email (staff only)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.ShipmentSummary}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - email filter requires a staff session"
// @Failure      502 {object} dto.ErrorResponse "Backend failed"
// @Security     BearerAuth
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := middleware.GetSession(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	email := session.Email
	if requested := strings.ToLower(strings.TrimSpace(c.Query("email"))); requested != "" && requested != email {
		if !session.IsStaff() {
			builder.Error(http.StatusForbidden, i18n.ErrKeyForbidden, nil)
			return
		}
		email = requested
	}

	shipments, err := h.shipments.List(c.Request.Context(), email)
	if err != nil {
		builder.Upstream(err)
		return
	}

	builder.SuccessOK(shipments)
}
