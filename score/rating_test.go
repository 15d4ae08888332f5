package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingAverage(t *testing.T) {
	count, sum, average := RatingAverage(0, 0, 4)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 4.0, sum)
	assert.Equal(t, 4.0, average)

	count, sum, average = RatingAverage(count, sum, 5)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 9.0, sum)
	assert.Equal(t, 4.5, average)
}
