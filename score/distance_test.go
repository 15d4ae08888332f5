package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistance(50.8503, 4.3517, 50.8503, 4.3517))
}

func TestHaversineDistanceOneDegreeOnEquator(t *testing.T) {
	// one degree of longitude on the equator is 6371 * pi / 180 km
	assert.Equal(t, 111.2, HaversineDistance(0, 0, 0, 1))
}

func TestHaversineDistanceEquatorToPole(t *testing.T) {
	// a quarter of the great circle
	assert.Equal(t, 10007.5, HaversineDistance(0, 0, 90, 0))
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	brusselsToParis := HaversineDistance(50.8503, 4.3517, 48.8566, 2.3522)
	parisToBrussels := HaversineDistance(48.8566, 2.3522, 50.8503, 4.3517)

	assert.Equal(t, brusselsToParis, parisToBrussels)
	assert.True(t, brusselsToParis > 0)
}
