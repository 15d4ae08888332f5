package score

import (
	"math"
	"strings"

	"github.com/JN-EPHEC/discovery-api/schema"
)

// Sub-score caps and point values are product-defined constants.
const (
	interestScoreCap   = 50
	priceScorePoints   = 10
	popularityScoreMax = 5
	popularityScoreMid = 3
	noveltyScorePoints = 5

	exactInterestPoints   = 15
	partialInterestPoints = 10
	titleInterestPoints   = 8

	// flat score assigned when either coordinate is missing
	neutralDistancePoints = 15
	farDistancePoints     = 5
)

// distanceBands maps a computed distance to its score. Bands are evaluated
// in order; anything beyond the last band scores farDistancePoints.
var distanceBands = []struct {
	MaxKm  float64
	Points int
}{
	{1, 30},
	{3, 25},
	{5, 20},
	{10, 15},
	{20, 10},
}

// CalculatePersonalScore scores a single activity for a single profile. It
// never fails: missing interests, locations or ratings degrade to the
// documented fallback scores. The breakdown parts always sum to the total.
func CalculatePersonalScore(profile schema.Profile, activity schema.Activity) schema.ScoredActivity {
	interest, matched := interestScore(profile.Interests, activity)

	distance := neutralDistancePoints
	var distanceKm *float64
	userLoc := profile.Location.ToLocation()
	activityLoc := activity.Location.ToLocation()
	if usableCoordinate(userLoc) && usableCoordinate(activityLoc) {
		km := HaversineDistance(userLoc.Latitude, userLoc.Longitude, activityLoc.Latitude, activityLoc.Longitude)
		distanceKm = &km
		distance = distancePoints(km)
	}

	breakdown := schema.ScoreBreakdown{
		Interest:   interest,
		Distance:   distance,
		Price:      pricePoints(activity.Price),
		Popularity: popularityPoints(activity.Rating),
		Novelty:    noveltyPoints(activity.IsNew),
	}

	return schema.ScoredActivity{
		Activity:         activity,
		PersonalScore:    breakdown.Interest + breakdown.Distance + breakdown.Price + breakdown.Popularity + breakdown.Novelty,
		DistanceKm:       distanceKm,
		MatchedInterests: matched,
		ScoreBreakdown:   breakdown,
	}
}

// interestScore awards points per user tag with the first matching rule
// only: exact tag match, substring match either direction between tags,
// then substring match inside the title. Contributions accumulate across
// distinct user tags and the running total is clamped to the cap.
func interestScore(interests []string, activity schema.Activity) (int, []string) {
	activityTags := make([]string, 0, len(activity.Interests))
	for _, tag := range activity.Interests {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		activityTags = append(activityTags, tag)
	}
	title := strings.ToLower(activity.Title)

	points := 0
	matched := []string{}
	seen := map[string]struct{}{}
	for _, raw := range interests {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}

		awarded := 0
		for _, activityTag := range activityTags {
			if activityTag == tag {
				awarded = exactInterestPoints
				break
			}
		}
		if awarded == 0 {
			for _, activityTag := range activityTags {
				if strings.Contains(activityTag, tag) || strings.Contains(tag, activityTag) {
					awarded = partialInterestPoints
					break
				}
			}
		}
		if awarded == 0 && strings.Contains(title, tag) {
			awarded = titleInterestPoints
		}

		if awarded > 0 {
			points += awarded
			matched = append(matched, tag)
		}
	}

	if points > interestScoreCap {
		points = interestScoreCap
	}

	return points, matched
}

func distancePoints(km float64) int {
	for _, band := range distanceBands {
		if km <= band.MaxKm {
			return band.Points
		}
	}
	return farDistancePoints
}

func pricePoints(price schema.ActivityPrice) int {
	if price == schema.ActivityPriceFree {
		return priceScorePoints
	}
	return 0
}

func popularityPoints(rating *float64) int {
	switch {
	case rating == nil:
		return 0
	case *rating >= 4.5:
		return popularityScoreMax
	case *rating >= 4.0:
		return popularityScoreMid
	default:
		return 0
	}
}

func noveltyPoints(isNew bool) int {
	if isNew {
		return noveltyScorePoints
	}
	return 0
}

// usableCoordinate reports whether a location can feed the distance
// calculation. Non-finite values are treated the same as a missing
// location so a malformed document can not break scoring.
func usableCoordinate(loc *schema.Location) bool {
	if loc == nil {
		return false
	}
	return isFinite(loc.Latitude) && isFinite(loc.Longitude)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
