package places

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Match is one disambiguated place record for a free-text query. Same-named
// cities (Paris, Springfield) come back as separate matches so the caller can
// let the user pick before generating an itinerary.
type Match struct {
	City             string  `json:"city"`
	State            string  `json:"state"`
	Country          string  `json:"country"`
	CountryCode      string  `json:"country_code"`
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// Service handles interactions with the Google Geocoding API.
type Service struct {
	client *maps.Client
}

// NewService creates a Service with the given API Key.
func NewService(apiKey string) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// Search geocodes the query and returns matches in the API's ranking order.
func (s *Service) Search(ctx context.Context, query string) ([]Match, error) {
	resp, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}

	var matches []Match
	for _, result := range resp {
		m := fromComponents(result.AddressComponents)
		m.FormattedAddress = result.FormattedAddress
		m.Lat = result.Geometry.Location.Lat
		m.Lng = result.Geometry.Location.Lng
		if m.City == "" {
			// Country-level or street-level hits are not useful destinations.
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// fromComponents extracts city/state/country from geocoder address components.
func fromComponents(components []maps.AddressComponent) Match {
	var m Match
	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "locality", "postal_town":
				if m.City == "" {
					m.City = c.LongName
				}
			case "administrative_area_level_1":
				m.State = c.LongName
			case "country":
				m.Country = c.LongName
				m.CountryCode = c.ShortName
			}
		}
	}
	return m
}
