package score

import (
	"sort"

	"github.com/JN-EPHEC/discovery-api/schema"
)

// MaxRankedActivities bounds the number of results returned by RankActivities.
const MaxRankedActivities = 20

// RankActivities scores every candidate for the given profile and returns
// them ordered by personal score descending, truncated to the top
// MaxRankedActivities. Equal scores are ordered by activity ID ascending so
// the ranking is deterministic.
func RankActivities(profile schema.Profile, activities []schema.Activity) []schema.ScoredActivity {
	ranked := make([]schema.ScoredActivity, 0, len(activities))
	for _, activity := range activities {
		ranked = append(ranked, CalculatePersonalScore(profile, activity))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PersonalScore != ranked[j].PersonalScore {
			return ranked[i].PersonalScore > ranked[j].PersonalScore
		}
		return ranked[i].ID.Hex() < ranked[j].ID.Hex()
	})

	if len(ranked) > MaxRankedActivities {
		ranked = ranked[:MaxRankedActivities]
	}

	return ranked
}
