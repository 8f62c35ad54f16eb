package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/i18n"
	"github.com/guttosm/courier-portal/internal/service"
)

// HSNHandler serves HSN code search and lookup.
type HSNHandler struct {
	searcher service.HSNSearcher
}

// NewHSNHandler creates a new HSNHandler.
func NewHSNHandler(searcher service.HSNSearcher) *HSNHandler {
	return &HSNHandler{searcher: searcher}
}

// Search handles GET /api/hsn requests.
//
// @Summary      Search HSN codes
// @Description  Returns up to 20 HSN codes whose description contains every whitespace-separated term of q (case-insensitive), in dataset order. Queries shorter than 2 characters return no results. The body is not wrapped in the success envelope.
// @Tags         HSN
// @Produce      json
// @Param        q query string false "Search text, e.g. 'cotton shirt'"
// @Success      200 {object} dto.HSNSearchResponse
// @Failure      503 {object} dto.ErrorResponse "HSN dataset could not be loaded"
// @Router       /api/hsn [get]
func (h *HSNHandler) Search(c *gin.Context) {
	results, err := h.searcher.Search(c.Query("q"))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusServiceUnavailable, i18n.ErrKeyHSNUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, dto.HSNSearchResponse{Results: results})
}

// Lookup handles GET /api/hsn/:code requests.
//
// @Summary      Look up an HSN code
// @Description  Returns the entry for a code. Dots and spaces in the code are ignored.
// @Tags         HSN
// @Produce      json
// @Param        code path string true "HSN code, e.g. 6109.10"
// @Success      200 {object} dto.SuccessResponse{data=hsn.Entry}
// @Failure      404 {object} dto.ErrorResponse "Unknown code"
// @Failure      503 {object} dto.ErrorResponse "HSN dataset could not be loaded"
// @Router       /api/hsn/{code} [get]
func (h *HSNHandler) Lookup(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entry, err := h.searcher.Lookup(c.Param("code"))
	switch {
	case errors.Is(err, service.ErrHSNCodeNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyUnknownHSNCode, nil)
	case err != nil:
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHSNUnavailable, err)
	default:
		builder.SuccessOK(entry)
	}
}
