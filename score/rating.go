package score

// RatingAverage folds one more rating into the running aggregate of an
// activity and returns the new count, sum and average.
func RatingAverage(count int64, sum float64, rating float64) (int64, float64, float64) {
	sum = sum + rating
	count = count + 1
	average := sum / float64(count)
	return count, sum, average
}
