package schema

// ScoreBreakdown lists the five sub-scores that sum to the personal score.
// Each one is clamped to its cap before summation: interest 50, distance 30,
// price 10, popularity 5, novelty 5.
type ScoreBreakdown struct {
	Interest   int `json:"interest" bson:"interest"`
	Distance   int `json:"distance" bson:"distance"`
	Price      int `json:"price" bson:"price"`
	Popularity int `json:"popularity" bson:"popularity"`
	Novelty    int `json:"novelty" bson:"novelty"`
}

// ScoredActivity is a client response **ONLY** structure: an activity
// together with its personalization score for one user. DistanceKm is
// omitted when either the user or the activity has no usable coordinate.
type ScoredActivity struct {
	Activity         `bson:",inline"`
	PersonalScore    int            `json:"personal_score"`
	DistanceKm       *float64       `json:"distance_km,omitempty"`
	MatchedInterests []string       `json:"matched_interests"`
	ScoreBreakdown   ScoreBreakdown `json:"score_breakdown"`
}
