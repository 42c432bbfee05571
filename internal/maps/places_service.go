package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// ErrPlaceNotFound is returned by Details when the place id does not resolve.
var ErrPlaceNotFound = errors.New("place not found")

// Prediction is a simplified autocomplete suggestion.
type Prediction struct {
	PlaceID       string `json:"place_id"`
	Description   string `json:"description"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// PlaceDetails is the resolved address and coordinates of a place.
type PlaceDetails struct {
	PlaceID string
	Address string
	Lat     float64
	Lng     float64
}

// Bias restricts autocomplete to a circle and a country.
type Bias struct {
	Lat     float64
	Lng     float64
	RadiusM uint
	Country string
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client   *maps.Client
	language string
	bias     Bias
}

// NewPlacesService creates a PlacesService with the given API key and search bias.
func NewPlacesService(apiKey, language string, bias Bias, opts ...maps.ClientOption) (*PlacesService, error) {
	client, err := newClient(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &PlacesService{client: client, language: language, bias: bias}, nil
}

// Autocomplete returns address predictions for input, biased to the service area.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	r := &maps.PlaceAutocompleteRequest{
		Input:    input,
		Location: &maps.LatLng{Lat: s.bias.Lat, Lng: s.bias.Lng},
		Radius:   s.bias.RadiusM,
		Language: s.language,
		Types:    maps.AutocompletePlaceTypeAddress,
	}
	if s.bias.Country != "" {
		r.Components = map[maps.Component][]string{maps.ComponentCountry: {s.bias.Country}}
	}

	resp, err := s.client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	out := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		out = append(out, Prediction{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return out, nil
}

// Details resolves a place id to its formatted address and coordinates.
func (s *PlacesService) Details(ctx context.Context, placeID string) (PlaceDetails, error) {
	r := &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: s.language,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskGeometry,
		},
	}

	res, err := s.client.PlaceDetails(ctx, r)
	if err != nil {
		switch apiStatus(err) {
		case "NOT_FOUND", "INVALID_REQUEST", "ZERO_RESULTS":
			return PlaceDetails{}, fmt.Errorf("%w: %s", ErrPlaceNotFound, placeID)
		}
		return PlaceDetails{}, fmt.Errorf("places api error: %w", err)
	}

	return PlaceDetails{
		PlaceID: placeID,
		Address: res.FormattedAddress,
		Lat:     res.Geometry.Location.Lat,
		Lng:     res.Geometry.Location.Lng,
	}, nil
}

// apiStatus extracts the status code from a "maps: STATUS - message" error.
// The client library reports API statuses only as formatted text.
func apiStatus(err error) string {
	rest, ok := strings.CutPrefix(err.Error(), "maps: ")
	if !ok {
		return ""
	}
	status, _, _ := strings.Cut(rest, " ")
	return status
}
