package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxibook/internal/config"
	httpapi "taxibook/internal/http"
	"taxibook/internal/http/middleware"
	"taxibook/internal/maps"
	"taxibook/internal/modules/booking"
	"taxibook/internal/modules/delivery"
	"taxibook/internal/modules/location"
	"taxibook/internal/modules/pricing"
	"taxibook/internal/types"
)

type stubPlaces struct{}

func (stubPlaces) Autocomplete(_ context.Context, input string) ([]maps.Prediction, error) {
	return []maps.Prediction{{PlaceID: "p1", Description: input + ", France", MainText: input}}, nil
}

func (stubPlaces) Details(_ context.Context, placeID string) (maps.PlaceDetails, error) {
	if placeID == "missing" {
		return maps.PlaceDetails{}, maps.ErrPlaceNotFound
	}
	return maps.PlaceDetails{PlaceID: placeID, Address: "77200 Torcy, France", Lat: 48.8502, Lng: 2.6508}, nil
}

type stubDirections struct {
	meters int
	err    error
}

func (d stubDirections) Drive(context.Context, string, string) (maps.Leg, error) {
	return maps.Leg{Meters: d.meters, Duration: 30 * time.Minute}, d.err
}

type testEnv struct {
	router    *gin.Engine
	relayHits int
}

func newTestEnv(t *testing.T, relayStatus int, directions stubDirections) *testEnv {
	t.Helper()
	return newTestEnvWithRates(t, relayStatus, directions, pricing.DefaultRates())
}

func newTestEnvWithRates(t *testing.T, relayStatus int, directions stubDirections, rates pricing.Rates) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{}
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		env.relayHits++
		w.WriteHeader(relayStatus)
	}))
	t.Cleanup(relay.Close)

	contact := config.ContactConfig{
		CompanyName: "Taxi Marne-la-Vallée",
		WhatsApp:    "+33750535658",
		Phone:       "+33 7 50 53 56 58",
		Email:       "contact@taximarnelavallee.com",
		Website:     "www.taximarnelavallee.com",
	}

	locationSvc := location.NewService(location.Deps{Places: stubPlaces{}, Directions: directions})
	pricingSvc := pricing.NewService(nil, rates, locationSvc, time.UTC)
	deliverySvc := delivery.NewService(
		delivery.NewFormRelay(relay.URL, 2*time.Second),
		delivery.Contact{WhatsApp: contact.WhatsApp, Email: contact.Email},
		0, nil,
	)
	bookingSvc := booking.NewService(pricingSvc, deliverySvc,
		booking.Formatter{Company: contact.CompanyName, Website: contact.Website}, nil)

	env.router = httpapi.NewRouter(httpapi.RouterDeps{
		Pricing:  pricingSvc,
		Location: locationSvc,
		Booking:  bookingSvc,
		Contact:  contact,
		Origins:  []string{"*"},
	})
	return env
}

func doRequest(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func trip() map[string]any {
	return map[string]any{
		"departure":   map[string]any{"address": "Gare de Torcy, 77200 Torcy"},
		"destination": map[string]any{"address": "Aéroport CDG, Roissy"},
		"date":        "2024-03-15",
		"time":        "22:30",
	}
}

func bookingBody(schemes ...string) map[string]any {
	return map[string]any{
		"first_name": "Jean",
		"last_name":  "Dupont",
		"email":      "jean.dupont@example.fr",
		"phone":      "06 12 34 56 78",
		"passengers": 2,
		"luggage":    1,
		"trip":       trip(),
		"schemes":    schemes,
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodGet, "/api/catalog?lang=en", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "en", body["language"])
	assert.Len(t, body["priority_towns"], 21)
	assert.Len(t, body["fleet"], 2)

	rates := body["rates"].(map[string]any)
	night := rates["night"].(map[string]any)
	assert.Equal(t, "19h-7h", night["period"])
	assert.Equal(t, float64(263), night["rate"].(map[string]any)["amount"])
	assert.Equal(t, "Night rate (19h-7h): €2.63/km", night["label"])
}

func TestMessages(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodGet, "/api/i18n", nil, map[string]string{"Accept-Language": "es"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "es", body["language"])
	assert.NotEmpty(t, body["messages"].(map[string]any)["validation.email"])
}

func TestPlaces(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})

	w := doRequest(env.router, http.MethodGet, "/api/places/autocomplete?input=Torcy", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["predictions"], 1)

	w = doRequest(env.router, http.MethodGet, "/api/places/autocomplete?input=T", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["predictions"])

	w = doRequest(env.router, http.MethodGet, "/api/places/suggestions?input=bussy", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["suggestions"], 2)

	w = doRequest(env.router, http.MethodGet, "/api/places/ChIJ-abc_123", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["in_priority_area"])

	w = doRequest(env.router, http.MethodGet, "/api/places/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(env.router, http.MethodGet, "/api/places/bad%20id", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuote(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodPost, "/api/quotes", trip(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, float64(25), body["distance_km"])
	assert.Equal(t, float64(6575), body["price"].(map[string]any)["amount"])
	assert.Equal(t, true, body["is_night_rate"])
	assert.Equal(t, "19h-7h", body["rate_period"])
	assert.Equal(t, true, body["in_priority_area"])
}

func TestQuote_ConfiguredRates(t *testing.T) {
	rates := pricing.Rates{
		DayPerKm:   types.Money{Amount: 250, Currency: "EUR"},
		NightPerKm: types.Money{Amount: 300, Currency: "EUR"},
		DayStart:   6,
		DayEnd:     21,
	}
	env := newTestEnvWithRates(t, http.StatusOK, stubDirections{meters: 10000}, rates)

	req := trip()
	req["time"] = "20:00"
	w := doRequest(env.router, http.MethodPost, "/api/quotes", req, map[string]string{"Accept-Language": "fr"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, false, body["is_night_rate"])
	assert.Equal(t, float64(2500), body["price"].(map[string]any)["amount"])
	assert.Equal(t, "6h-21h", body["rate_period"])
	assert.Equal(t, "Tarif jour (6h-21h): 2,50 €/km", body["rate_label"])

	w = doRequest(env.router, http.MethodGet, "/api/catalog?lang=en", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	catalogRates := decode(t, w)["rates"].(map[string]any)
	assert.Equal(t, "Day rate (6h-21h): €2.50/km", catalogRates["day"].(map[string]any)["label"])
	assert.Equal(t, "Night rate (21h-6h): €3.00/km", catalogRates["night"].(map[string]any)["label"])
}

func TestQuote_Errors(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})

	bad := trip()
	bad["time"] = "25:99"
	w := doRequest(env.router, http.MethodPost, "/api/quotes", bad, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Erreur lors du calcul du tarif", decode(t, w)["error"])

	env = newTestEnv(t, http.StatusOK, stubDirections{err: maps.ErrNoRoute})
	w = doRequest(env.router, http.MethodPost, "/api/quotes", trip(), nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBooking_Delivered(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodPost, "/api/bookings", bookingBody("https", "mailto"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Len(t, body["reference"], 8)
	assert.Equal(t, "Réservation envoyée au chauffeur", body["message"])
	assert.Equal(t, 1, env.relayHits)

	d := body["delivery"].(map[string]any)
	assert.Equal(t, "fallback", d["messaging"].(map[string]any)["outcome"])
	assert.Equal(t, "primary", d["relay"].(map[string]any)["outcome"])

	links := body["links"].([]any)
	require.Len(t, links, 1)
	assert.True(t, strings.HasPrefix(links[0].(string), "https://wa.me/33750535658?text="))
}

func TestBooking_SchemesFromHeader(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodPost, "/api/bookings", bookingBody(),
		map[string]string{middleware.SchemesHeader: "whatsapp,mailto"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	links := decode(t, w)["links"].([]any)
	require.Len(t, links, 1)
	assert.True(t, strings.HasPrefix(links[0].(string), "whatsapp://send?phone=+33750535658&text="))
}

func TestBooking_ValidationLocalized(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	body := bookingBody("https")
	body["email"] = "jean"
	body["first_name"] = ""

	w := doRequest(env.router, http.MethodPost, "/api/bookings?lang=en", body, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decode(t, w)
	fields := resp["fields"].(map[string]any)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "first_name")
	assert.Equal(t, "Please correct the highlighted fields", resp["error"])
	assert.Equal(t, 0, env.relayHits)
}

func TestBooking_NothingDelivered(t *testing.T) {
	env := newTestEnv(t, http.StatusInternalServerError, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodPost, "/api/bookings", bookingBody("tel"), nil)
	require.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Contains(t, body["message"], "+33 7 50 53 56 58")
	assert.Empty(t, body["links"])
	assert.Equal(t, 1, env.relayHits)
}

func TestBooking_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{"))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingReceipt(t *testing.T) {
	env := newTestEnv(t, http.StatusOK, stubDirections{meters: 25000})
	w := doRequest(env.router, http.MethodPost, "/api/bookings/receipt", bookingBody(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	assert.Equal(t, 0, env.relayHits)
}
