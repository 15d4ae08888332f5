package score

import (
	"math"
)

// earth radius used by the haversine formula, in kilometers
const earthRadiusKm = 6371

// HaversineDistance returns the great-circle distance in kilometers between
// two coordinates in decimal degrees, rounded to one decimal place. The
// caller guarantees all four values are finite.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

func toRadians(degree float64) float64 {
	return degree * math.Pi / 180
}
