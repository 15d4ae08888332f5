package geo

import (
	"fmt"

	"github.com/JN-EPHEC/discovery-api/external/nominatim"
	"github.com/JN-EPHEC/discovery-api/schema"
)

var (
	ErrLocationNotFound       = fmt.Errorf("location is not found")
	ErrGeocoderNotInitialized = fmt.Errorf("geocoder is not initialized")
)

// Geocoder resolves a free-text location description into a coordinate.
// The scoring core never geocodes; resolution happens once, when a profile
// city is saved.
type Geocoder interface {
	LookupCoordinate(query string) (schema.Location, error)
}

// NominatimGeocoder resolves locations through a nominatim instance.
type NominatimGeocoder struct {
	client *nominatim.Client
}

func NewNominatimGeocoder(endpoint string) *NominatimGeocoder {
	return &NominatimGeocoder{
		client: nominatim.New(endpoint),
	}
}

func (n *NominatimGeocoder) LookupCoordinate(query string) (schema.Location, error) {
	places, err := n.client.Search(query)
	if err != nil {
		return schema.Location{}, err
	}

	if len(places) == 0 {
		return schema.Location{}, ErrLocationNotFound
	}

	return schema.Location{
		Latitude:  places[0].Latitude,
		Longitude: places[0].Longitude,
	}, nil
}

var defaultGeocoder Geocoder

func SetGeocoder(geocoder Geocoder) {
	defaultGeocoder = geocoder
}

func LookupCoordinate(query string) (schema.Location, error) {
	if defaultGeocoder == nil {
		return schema.Location{}, ErrGeocoderNotInitialized
	}

	return defaultGeocoder.LookupCoordinate(query)
}
