package schema

// Location is a point in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// GeoJSON is the mongodb geospatial point format. Coordinates are stored
// in [longitude, latitude] order.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoJSONPoint converts a location into its mongodb point representation.
func NewGeoJSONPoint(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// ToLocation converts a mongodb point back into a location. It returns nil
// for a missing or malformed point.
func (g *GeoJSON) ToLocation() *Location {
	if g == nil || len(g.Coordinates) != 2 {
		return nil
	}

	return &Location{
		Latitude:  g.Coordinates[1],
		Longitude: g.Coordinates[0],
	}
}
