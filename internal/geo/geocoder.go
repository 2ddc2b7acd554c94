package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/thegrihome/grihome-api/internal/utils"
)

// Location is the resolved geography of a street address.
type Location struct {
	Latitude         float64
	Longitude        float64
	City             string
	State            string
	ZipCode          string
	Locality         string
	FormattedAddress string
}

// Geocoder resolves free-form addresses. Implementations are external
// collaborators; failures are terminal for the request that needed them.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

// NopGeocoder passes the raw address through unresolved. Used when no maps
// API key is configured.
type NopGeocoder struct{}

func (NopGeocoder) Geocode(ctx context.Context, address string) (*Location, error) {
	return &Location{FormattedAddress: address}, nil
}

// GoogleGeocoder resolves addresses through the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleGeocoder{client: c}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*Location, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("%w: geocode: %v", utils.ErrExternalServiceFailure, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no geocoding result for %q", address)
	}

	res := results[0]
	loc := &Location{
		Latitude:         res.Geometry.Location.Lat,
		Longitude:        res.Geometry.Location.Lng,
		FormattedAddress: res.FormattedAddress,
	}
	for _, comp := range res.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				loc.City = comp.LongName
			case "administrative_area_level_1":
				loc.State = comp.LongName
			case "postal_code":
				loc.ZipCode = comp.LongName
			case "sublocality", "neighborhood":
				if loc.Locality == "" {
					loc.Locality = comp.LongName
				}
			}
		}
	}
	return loc, nil
}
