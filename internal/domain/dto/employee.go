package dto

import (
	"strings"

	"github.com/guttosm/courier-portal/internal/domain/model"
)

// RedeemCodeRequest is the body of POST /api/employee/redeem-code.
//
// @Description Redeem a balance code on behalf of a customer
// @Example {"code": "CP-7F3K-92QD"}
type RedeemCodeRequest struct {
	Code string `json:"code" binding:"required" example:"CP-7F3K-92QD"`
} // @name RedeemCodeRequest

// Validate normalises and checks the code.
func (r *RedeemCodeRequest) Validate() error {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	if r.Code == "" {
		return &ValidationError{Field: "code", Message: "code is required"}
	}
	return nil
}

// ActivityResponse is a page of activity log entries.
type ActivityResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Skip    int              `json:"skip"`
} // @name ActivityResponse
