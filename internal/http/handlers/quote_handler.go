// README: Quote handler; prices a trip without booking it.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxibook/internal/http/middleware"
	"taxibook/internal/modules/location"
	"taxibook/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing  *pricing.Service
	location *location.Service
}

func NewQuoteHandler(pricingSvc *pricing.Service, locationSvc *location.Service) *QuoteHandler {
	return &QuoteHandler{pricing: pricingSvc, location: locationSvc}
}

type quoteResponse struct {
	pricing.Quote
	RatePeriod     string `json:"rate_period"`
	RateLabel      string `json:"rate_label"`
	InPriorityArea bool   `json:"in_priority_area"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req pricing.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	q, err := h.pricing.Quote(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	info := h.pricing.RateInfo(q.IsNightRate)
	inArea := h.location != nil &&
		(h.location.InPriorityArea(q.Departure) || h.location.InPriorityArea(q.Destination))

	writeJSON(c, http.StatusOK, quoteResponse{
		Quote:          q,
		RatePeriod:     info.Period,
		RateLabel:      rateLabel(middleware.Lang(c), info),
		InPriorityArea: inArea,
	})
}
