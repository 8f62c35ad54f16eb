package dto

import (
	"fmt"
	"strings"

	"github.com/guttosm/courier-portal/internal/domain/model"
)

// AddressRequest is a sender or receiver in a booking.
type AddressRequest struct {
	Name    string `json:"name" binding:"required" example:"Asha Rao"`
	Phone   string `json:"phone" binding:"required" example:"+919800000000"`
	Email   string `json:"email,omitempty" binding:"omitempty,email" example:"asha@example.com"`
	Line1   string `json:"address_line1" binding:"required" example:"12 MG Road"`
	Line2   string `json:"address_line2,omitempty"`
	City    string `json:"city" binding:"required" example:"Bengaluru"`
	State   string `json:"state,omitempty" example:"Karnataka"`
	Pincode string `json:"pincode,omitempty" example:"560001"`
	Country string `json:"country,omitempty" example:"India"`
} // @name AddressRequest

func (a AddressRequest) toModel() model.Address {
	return model.Address{
		Name:    strings.TrimSpace(a.Name),
		Phone:   strings.TrimSpace(a.Phone),
		Email:   strings.TrimSpace(a.Email),
		Line1:   strings.TrimSpace(a.Line1),
		Line2:   strings.TrimSpace(a.Line2),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		Pincode: strings.TrimSpace(a.Pincode),
		Country: strings.TrimSpace(a.Country),
	}
}

// GoodsRequest is one declared line of a booking.
type GoodsRequest struct {
	Description string  `json:"description" binding:"required" example:"Green tea"`
	HSNCode     string  `json:"hsn_code,omitempty" example:"090210"`
	Quantity    int     `json:"quantity" binding:"gte=0" example:"2"`
	Value       float64 `json:"value" binding:"gte=0" example:"450"`
} // @name GoodsRequest

// BookShipmentRequest is the body of POST /api/shipments/{kind}.
//
// @Description Shipment booking with sender, receiver, package and goods
type BookShipmentRequest struct {
	Sender   AddressRequest    `json:"sender" binding:"required"`
	Receiver AddressRequest    `json:"receiver" binding:"required"`
	Package  DimensionsRequest `json:"package"`
	Goods    []GoodsRequest    `json:"goods" binding:"required,min=1,dive"`
	// Mode is the domestic transport mode.
	Mode string `json:"mode,omitempty" example:"surface"`
	// Service is the international service; required for international bookings.
	Service string `json:"service,omitempty" example:"express"`
} // @name BookShipmentRequest

// Validate performs custom validation on the request.
func (r *BookShipmentRequest) Validate() error {
	if requireWeight(r.Package) != nil {
		return &ValidationError{Field: "package", Message: ErrWeightRequired.Message}
	}
	if len(r.Goods) == 0 {
		return &ValidationError{Field: "goods", Message: "at least one goods item is required"}
	}
	for i, g := range r.Goods {
		if strings.TrimSpace(g.Description) == "" {
			return &ValidationError{Field: fmt.Sprintf("goods[%d].description", i), Message: "description is required"}
		}
	}
	return nil
}

// ValidateFor applies the rules that depend on the booking kind.
func (r *BookShipmentRequest) ValidateFor(kind model.ShipmentKind) error {
	if kind == model.ShipmentInternational {
		if strings.TrimSpace(r.Receiver.Country) == "" {
			return &ValidationError{Field: "receiver.country", Message: "country is required for international shipments"}
		}
		if strings.TrimSpace(r.Service) == "" {
			return &ValidationError{Field: "service", Message: "service is required for international shipments"}
		}
	}
	return nil
}

// Booking converts the request to the domain type.
func (r *BookShipmentRequest) Booking(kind model.ShipmentKind, bookedBy string) model.ShipmentBooking {
	goods := make([]model.GoodsItem, 0, len(r.Goods))
	for _, g := range r.Goods {
		goods = append(goods, model.GoodsItem{
			Description: strings.TrimSpace(g.Description),
			HSNCode:     strings.TrimSpace(g.HSNCode),
			Quantity:    g.Quantity,
			Value:       g.Value,
		})
	}

	dims := r.Package.Dimensions()
	return model.ShipmentBooking{
		Kind:     kind,
		Sender:   r.Sender.toModel(),
		Receiver: r.Receiver.toModel(),
		Package:  dims,
		Weight:   dims.Chargeable(),
		Goods:    goods,
		Mode:     strings.TrimSpace(r.Mode),
		Service:  strings.TrimSpace(r.Service),
		BookedBy: bookedBy,
	}
}

// BookingResponse is the body of a successful booking.
//
// @Description Booked shipment with a confirmation message
type BookingResponse struct {
	model.BookingResult
	Message string `json:"message,omitempty" example:"Shipment booked"`
} // @name BookingResponse
