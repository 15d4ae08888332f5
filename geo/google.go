package geo

import (
	"context"

	"googlemaps.github.io/maps"

	"github.com/JN-EPHEC/discovery-api/schema"
)

// GoogleGeocoder resolves locations through the Google Maps geocoding API.
// It is selected over nominatim by configuration.
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GoogleGeocoder{
		client: client,
	}, nil
}

func (g *GoogleGeocoder) LookupCoordinate(query string) (schema.Location, error) {
	results, err := g.client.Geocode(context.Background(), &maps.GeocodingRequest{
		Address: query,
	})
	if err != nil {
		return schema.Location{}, err
	}

	if len(results) == 0 {
		return schema.Location{}, ErrLocationNotFound
	}

	return schema.Location{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
	}, nil
}
