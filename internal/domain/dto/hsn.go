package dto

import "github.com/guttosm/courier-portal/internal/hsn"

// HSNSearchResponse is the body of GET /api/hsn. It is returned without the
// success envelope.
//
// @Description Up to 20 HSN codes whose description contains every query term
// @Example {"results": [{"code": "0902", "description": "Tea, whether or not flavoured"}]}
type HSNSearchResponse struct {
	Results []hsn.Entry `json:"results"`
} // @name HSNSearchResponse
