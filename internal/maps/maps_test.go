package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func fakeAPI(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouteService_Drive(t *testing.T) {
	var gotQuery map[string]string
	srv := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/maps/api/directions/json": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			gotQuery = map[string]string{
				"origin":      q.Get("origin"),
				"destination": q.Get("destination"),
				"mode":        q.Get("mode"),
				"language":    q.Get("language"),
			}
			_, _ = w.Write([]byte(`{"status":"OK","routes":[{"legs":[
				{"distance":{"text":"25 km","value":25000},"duration":{"text":"30 min","value":1800}}
			]}]}`))
		},
	})

	svc, err := NewRouteService("test-key", "fr", "fr", maps.WithBaseURL(srv.URL))
	require.NoError(t, err)

	leg, err := svc.Drive(context.Background(), "48.850200,2.650800", "place_id:cdg")
	require.NoError(t, err)

	assert.Equal(t, 25000, leg.Meters)
	assert.Equal(t, 30*time.Minute, leg.Duration)
	assert.Equal(t, "48.850200,2.650800", gotQuery["origin"])
	assert.Equal(t, "place_id:cdg", gotQuery["destination"])
	assert.Equal(t, "driving", gotQuery["mode"])
	assert.Equal(t, "fr", gotQuery["language"])
}

func TestRouteService_NoRoute(t *testing.T) {
	srv := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/maps/api/directions/json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
		},
	})

	svc, err := NewRouteService("test-key", "fr", "fr", maps.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = svc.Drive(context.Background(), "Torcy", "Atlantis")
	assert.True(t, errors.Is(err, ErrNoRoute), "got %v", err)
}

func TestPlacesService_Autocomplete(t *testing.T) {
	var components, location, radius string
	srv := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/maps/api/place/autocomplete/json": func(w http.ResponseWriter, r *http.Request) {
			components = r.URL.Query().Get("components")
			location = r.URL.Query().Get("location")
			radius = r.URL.Query().Get("radius")
			_, _ = w.Write([]byte(`{"status":"OK","predictions":[
				{"place_id":"p1","description":"Torcy, France",
				 "structured_formatting":{"main_text":"Torcy","secondary_text":"France"}}
			]}`))
		},
	})

	svc, err := NewPlacesService("test-key", "fr",
		Bias{Lat: 48.8584, Lng: 2.6331, RadiusM: 50000, Country: "fr"},
		maps.WithBaseURL(srv.URL))
	require.NoError(t, err)

	preds, err := svc.Autocomplete(context.Background(), "Torc")
	require.NoError(t, err)
	require.Len(t, preds, 1)

	assert.Equal(t, Prediction{PlaceID: "p1", Description: "Torcy, France", MainText: "Torcy", SecondaryText: "France"}, preds[0])
	assert.Equal(t, "country:fr", components)
	assert.Equal(t, "48.8584,2.6331", location)
	assert.Equal(t, "50000", radius)
}

func TestPlacesService_Details(t *testing.T) {
	srv := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/maps/api/place/details/json": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "p1", r.URL.Query().Get("placeid"))
			_, _ = w.Write([]byte(`{"status":"OK","result":{
				"formatted_address":"77200 Torcy, France",
				"geometry":{"location":{"lat":48.8502,"lng":2.6508}}
			}}`))
		},
	})

	svc, err := NewPlacesService("test-key", "fr", Bias{}, maps.WithBaseURL(srv.URL))
	require.NoError(t, err)

	d, err := svc.Details(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, PlaceDetails{PlaceID: "p1", Address: "77200 Torcy, France", Lat: 48.8502, Lng: 2.6508}, d)
}

func TestPlacesService_APIError(t *testing.T) {
	srv := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
		"/maps/api/place/details/json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
		},
	})

	svc, err := NewPlacesService("test-key", "fr", Bias{}, maps.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = svc.Details(context.Background(), "p1")
	assert.ErrorContains(t, err, "REQUEST_DENIED")
	assert.NotErrorIs(t, err, ErrPlaceNotFound)
}

func TestPlacesService_DetailsNotFound(t *testing.T) {
	for _, status := range []string{"NOT_FOUND", "INVALID_REQUEST"} {
		t.Run(status, func(t *testing.T) {
			srv := fakeAPI(t, map[string]func(http.ResponseWriter, *http.Request){
				"/maps/api/place/details/json": func(w http.ResponseWriter, _ *http.Request) {
					_, _ = w.Write([]byte(`{"status":"` + status + `"}`))
				},
			})

			svc, err := NewPlacesService("test-key", "fr", Bias{}, maps.WithBaseURL(srv.URL))
			require.NoError(t, err)

			_, err = svc.Details(context.Background(), "gone")
			assert.ErrorIs(t, err, ErrPlaceNotFound)
		})
	}
}

func TestAPIStatus(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", apiStatus(errors.New("maps: NOT_FOUND - ")))
	assert.Equal(t, "OVER_QUERY_LIMIT", apiStatus(errors.New("maps: OVER_QUERY_LIMIT - slow down")))
	assert.Empty(t, apiStatus(errors.New("dial tcp: connection refused")))
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewRouteService("", "fr", "fr")
	assert.Error(t, err)
}
