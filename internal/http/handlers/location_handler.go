// README: Address search handlers (autocomplete, place details, local suggestions).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxibook/internal/http/middleware"
	"taxibook/internal/i18n"
	"taxibook/internal/modules/location"
)

type LocationHandler struct {
	location *location.Service
}

func NewLocationHandler(svc *location.Service) *LocationHandler {
	return &LocationHandler{location: svc}
}

func (h *LocationHandler) Autocomplete(c *gin.Context) {
	preds, err := h.location.Search(c.Request.Context(), c.Query("input"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"predictions": preds})
}

func (h *LocationHandler) Suggestions(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"suggestions": h.location.Suggestions(c.Query("input"))})
}

func (h *LocationHandler) Details(c *gin.Context) {
	id := c.Param("id")
	if !isValidPlaceID(id) {
		writeError(c, http.StatusBadRequest, i18n.T(middleware.Lang(c), i18n.PlacesNoResults, nil))
		return
	}
	loc, err := h.location.Resolve(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp := gin.H{
		"location":         loc,
		"in_priority_area": h.location.InPriorityArea(loc),
	}
	if loc.Coords != nil {
		resp["nearest_towns"] = h.location.NearestTowns(*loc.Coords, 3)
	}
	writeJSON(c, http.StatusOK, resp)
}
