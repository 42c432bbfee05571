// README: Catalog handlers; static service data and message tables for the client.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxibook/internal/catalog"
	"taxibook/internal/config"
	"taxibook/internal/http/middleware"
	"taxibook/internal/i18n"
	"taxibook/internal/modules/location"
	"taxibook/internal/modules/pricing"
)

type CatalogHandler struct {
	pricing  *pricing.Service
	location *location.Service
	contact  config.ContactConfig
}

func NewCatalogHandler(pricingSvc *pricing.Service, locationSvc *location.Service, contact config.ContactConfig) *CatalogHandler {
	return &CatalogHandler{pricing: pricingSvc, location: locationSvc, contact: contact}
}

type rateView struct {
	pricing.RateInfo
	Label string `json:"label"`
}

func (h *CatalogHandler) Get(c *gin.Context) {
	lang := middleware.Lang(c)
	day, night := h.pricing.RateInfo(false), h.pricing.RateInfo(true)

	writeJSON(c, http.StatusOK, gin.H{
		"company": gin.H{
			"name":     h.contact.CompanyName,
			"phone":    h.contact.Phone,
			"whatsapp": h.contact.WhatsApp,
			"email":    h.contact.Email,
			"website":  h.contact.Website,
		},
		"rates": gin.H{
			"day":   rateView{RateInfo: day, Label: rateLabel(lang, day)},
			"night": rateView{RateInfo: night, Label: rateLabel(lang, night)},
		},
		"priority_towns":       catalog.PriorityTowns,
		"major_destinations":   catalog.MajorDestinations,
		"popular_destinations": h.location.PopularDestinations(),
		"fleet":                catalog.Fleet,
		"languages":            i18n.Supported(),
		"language":             lang,
	})
}

func (h *CatalogHandler) Messages(c *gin.Context) {
	lang := middleware.Lang(c)
	writeJSON(c, http.StatusOK, gin.H{"language": lang, "messages": i18n.Table(lang)})
}
