// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taxibook/internal/http/middleware"
	"taxibook/internal/i18n"
	"taxibook/internal/modules/booking"
	"taxibook/internal/modules/location"
	"taxibook/internal/modules/pricing"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// isValidPlaceID accepts the characters Google place ids are made of.
func isValidPlaceID(v string) bool {
	if v == "" || len(v) > 512 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '_' {
			continue
		}
		return false
	}
	return true
}

// rateLabel renders the localized label of a tariff with its own window and per-km rate.
func rateLabel(lang i18n.Language, info pricing.RateInfo) string {
	key := i18n.QuoteDayRate
	if info.Night {
		key = i18n.QuoteNightRate
	}
	rate := info.Rate.Fixed()
	switch lang {
	case i18n.French, i18n.Spanish, i18n.German, i18n.Italian:
		rate = strings.Replace(rate, ".", ",", 1)
	}
	return i18n.T(lang, key, map[string]string{"period": info.Period, "rate": rate})
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinels to a status and a localized message.
func writeServiceError(c *gin.Context, err error) {
	lang := middleware.Lang(c)
	_ = c.Error(err)

	var fields booking.FieldErrors
	switch {
	case errors.As(err, &fields):
		writeJSON(c, http.StatusUnprocessableEntity, errorResponse{
			Error:  i18n.T(lang, i18n.BookingFormInvalid, nil),
			Fields: fields.Localize(lang),
		})
	case errors.Is(err, pricing.ErrInvalidTrip):
		writeError(c, http.StatusBadRequest, i18n.T(lang, i18n.QuoteErrorCalculation, nil))
	case errors.Is(err, pricing.ErrRouteUnavailable):
		writeError(c, http.StatusBadGateway, i18n.T(lang, i18n.QuoteErrorCalculation, nil))
	case errors.Is(err, location.ErrNotFound):
		writeError(c, http.StatusNotFound, i18n.T(lang, i18n.PlacesNoResults, nil))
	case errors.Is(err, location.ErrUnavailable):
		writeError(c, http.StatusServiceUnavailable, i18n.T(lang, i18n.PlacesUnavailable, nil))
	default:
		writeError(c, http.StatusInternalServerError, i18n.T(lang, i18n.CommonError, nil))
	}
}
