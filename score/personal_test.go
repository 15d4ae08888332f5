package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JN-EPHEC/discovery-api/schema"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCalculatePersonalScoreExactInterestMatch(t *testing.T) {
	profile := schema.Profile{
		Interests: []string{"sport"},
	}
	rating := 4.7
	activity := schema.Activity{
		Title:     "Tournoi de sport",
		Interests: []string{"sport", "social"},
		Price:     schema.ActivityPriceFree,
		Rating:    &rating,
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, schema.ScoreBreakdown{
		Interest:   15,
		Distance:   15,
		Price:      10,
		Popularity: 5,
		Novelty:    0,
	}, scored.ScoreBreakdown)
	assert.Equal(t, 45, scored.PersonalScore)
	assert.Equal(t, []string{"sport"}, scored.MatchedInterests)
	assert.Nil(t, scored.DistanceKm)
}

func TestCalculatePersonalScorePartialInterestMatch(t *testing.T) {
	profile := schema.Profile{
		Interests: []string{"cuisine"},
	}
	activity := schema.Activity{
		Title:     "Atelier du samedi",
		Interests: []string{"cuisine italienne"},
		Price:     schema.ActivityPricePaid,
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 10, scored.ScoreBreakdown.Interest)
	assert.Equal(t, []string{"cuisine"}, scored.MatchedInterests)
}

func TestCalculatePersonalScorePartialInterestMatchReversed(t *testing.T) {
	profile := schema.Profile{
		Interests: []string{"cuisine italienne"},
	}
	activity := schema.Activity{
		Title:     "Atelier du samedi",
		Interests: []string{"cuisine"},
		Price:     schema.ActivityPricePaid,
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 10, scored.ScoreBreakdown.Interest)
}

func TestCalculatePersonalScoreTitleInterestMatch(t *testing.T) {
	profile := schema.Profile{
		Interests: []string{"Karaoké"},
	}
	activity := schema.Activity{
		Title: "Soirée Karaoké au centre-ville",
		Price: schema.ActivityPricePaid,
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 8, scored.ScoreBreakdown.Interest)
	assert.Equal(t, []string{"karaoké"}, scored.MatchedInterests)
}

func TestCalculatePersonalScoreInterestCap(t *testing.T) {
	profile := schema.Profile{
		Interests: []string{"sport", "social", "nature", "musique"},
	}
	activity := schema.Activity{
		Title:     "Grand rassemblement",
		Interests: []string{"sport", "social", "nature", "musique"},
		Price:     schema.ActivityPricePaid,
	}

	scored := CalculatePersonalScore(profile, activity)

	// four exact matches are worth 60 points before the clamp
	assert.Equal(t, 50, scored.ScoreBreakdown.Interest)
	assert.Len(t, scored.MatchedInterests, 4)
}

func TestCalculatePersonalScoreDuplicateInterestCountedOnce(t *testing.T) {
	profile := schema.Profile{
		Interests: []string{"sport", "Sport"},
	}
	activity := schema.Activity{
		Title:     "Tournoi",
		Interests: []string{"sport"},
		Price:     schema.ActivityPricePaid,
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 15, scored.ScoreBreakdown.Interest)
	assert.Equal(t, []string{"sport"}, scored.MatchedInterests)
}

func TestCalculatePersonalScoreDistanceBands(t *testing.T) {
	assert.Equal(t, 30, distancePoints(0.5))
	assert.Equal(t, 30, distancePoints(1))
	assert.Equal(t, 25, distancePoints(1.1))
	assert.Equal(t, 25, distancePoints(3))
	assert.Equal(t, 20, distancePoints(4.2))
	assert.Equal(t, 20, distancePoints(5))
	assert.Equal(t, 15, distancePoints(9.9))
	assert.Equal(t, 15, distancePoints(10))
	assert.Equal(t, 10, distancePoints(15))
	assert.Equal(t, 10, distancePoints(20))
	assert.Equal(t, 5, distancePoints(20.1))
	assert.Equal(t, 5, distancePoints(500))
}

func TestCalculatePersonalScoreWithCoordinates(t *testing.T) {
	profile := schema.Profile{
		Location: schema.NewGeoJSONPoint(schema.Location{Latitude: 0, Longitude: 0}),
	}
	near := schema.Activity{
		Title:    "Marché nocturne",
		Price:    schema.ActivityPricePaid,
		Location: schema.NewGeoJSONPoint(schema.Location{Latitude: 0, Longitude: 0.005}),
	}
	far := near
	far.Location = schema.NewGeoJSONPoint(schema.Location{Latitude: 0, Longitude: 1})

	scoredNear := CalculatePersonalScore(profile, near)
	scoredFar := CalculatePersonalScore(profile, far)

	assert.Equal(t, 30, scoredNear.ScoreBreakdown.Distance)
	assert.Equal(t, 0.6, *scoredNear.DistanceKm)
	assert.Equal(t, 5, scoredFar.ScoreBreakdown.Distance)
	assert.Equal(t, 111.2, *scoredFar.DistanceKm)

	// identical activities at different distances differ by exactly the
	// band point spread
	assert.Equal(t, 25, scoredNear.PersonalScore-scoredFar.PersonalScore)
}

func TestCalculatePersonalScoreNeutralDistanceWithoutCoordinates(t *testing.T) {
	profile := schema.Profile{}
	activity := schema.Activity{
		Title: "Balade en forêt",
		Price: schema.ActivityPricePaid,
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 15, scored.ScoreBreakdown.Distance)
	assert.Nil(t, scored.DistanceKm)
}

func TestCalculatePersonalScoreNeutralDistanceWithoutActivityCoordinate(t *testing.T) {
	profile := schema.Profile{
		Location: schema.NewGeoJSONPoint(schema.Location{Latitude: 50.85, Longitude: 4.35}),
	}
	activity := schema.Activity{
		Title: "Balade en forêt",
		Price: schema.ActivityPricePaid,
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 15, scored.ScoreBreakdown.Distance)
	assert.Nil(t, scored.DistanceKm)
}

func TestCalculatePersonalScoreNonFiniteCoordinateFallsBack(t *testing.T) {
	profile := schema.Profile{
		Location: schema.NewGeoJSONPoint(schema.Location{Latitude: math.NaN(), Longitude: 4.35}),
	}
	activity := schema.Activity{
		Title:    "Balade en forêt",
		Price:    schema.ActivityPricePaid,
		Location: schema.NewGeoJSONPoint(schema.Location{Latitude: 50.85, Longitude: 4.35}),
	}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 15, scored.ScoreBreakdown.Distance)
	assert.Nil(t, scored.DistanceKm)
}

func TestCalculatePersonalScorePrice(t *testing.T) {
	profile := schema.Profile{}
	free := schema.Activity{Title: "Concert", Price: schema.ActivityPriceFree}
	paid := schema.Activity{Title: "Concert", Price: schema.ActivityPricePaid}

	scoredFree := CalculatePersonalScore(profile, free)
	scoredPaid := CalculatePersonalScore(profile, paid)

	assert.Equal(t, 10, scoredFree.ScoreBreakdown.Price)
	assert.Equal(t, 0, scoredPaid.ScoreBreakdown.Price)
	assert.Equal(t, 10, scoredFree.PersonalScore-scoredPaid.PersonalScore)
}

func TestCalculatePersonalScorePopularity(t *testing.T) {
	assert.Equal(t, 0, popularityPoints(nil))
	assert.Equal(t, 5, popularityPoints(floatPtr(4.7)))
	assert.Equal(t, 5, popularityPoints(floatPtr(4.5)))
	assert.Equal(t, 3, popularityPoints(floatPtr(4.49)))
	assert.Equal(t, 3, popularityPoints(floatPtr(4.0)))
	assert.Equal(t, 0, popularityPoints(floatPtr(3.9)))
	assert.Equal(t, 0, popularityPoints(floatPtr(0)))
}

func TestCalculatePersonalScoreNovelty(t *testing.T) {
	profile := schema.Profile{}
	activity := schema.Activity{Title: "Escape game", Price: schema.ActivityPricePaid, IsNew: true}

	scored := CalculatePersonalScore(profile, activity)

	assert.Equal(t, 5, scored.ScoreBreakdown.Novelty)
}

func TestCalculatePersonalScoreBounds(t *testing.T) {
	rating := 4.9
	profile := schema.Profile{
		Interests: []string{"sport", "social", "nature", "musique"},
		Location:  schema.NewGeoJSONPoint(schema.Location{Latitude: 0, Longitude: 0}),
	}
	best := schema.Activity{
		Title:     "Grand tournoi",
		Interests: []string{"sport", "social", "nature", "musique"},
		Price:     schema.ActivityPriceFree,
		Location:  schema.NewGeoJSONPoint(schema.Location{Latitude: 0, Longitude: 0}),
		Rating:    &rating,
		IsNew:     true,
	}
	worst := schema.Activity{
		Title:    "Conférence",
		Price:    schema.ActivityPricePaid,
		Location: schema.NewGeoJSONPoint(schema.Location{Latitude: 0, Longitude: 1}),
	}

	scoredBest := CalculatePersonalScore(profile, best)
	scoredWorst := CalculatePersonalScore(profile, worst)

	assert.Equal(t, 100, scoredBest.PersonalScore)
	assert.Equal(t, 5, scoredWorst.PersonalScore)

	for _, scored := range []schema.ScoredActivity{scoredBest, scoredWorst} {
		b := scored.ScoreBreakdown
		assert.Equal(t, scored.PersonalScore, b.Interest+b.Distance+b.Price+b.Popularity+b.Novelty)
		assert.True(t, scored.PersonalScore >= 0 && scored.PersonalScore <= 100)
	}
}
