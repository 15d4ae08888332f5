package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActivityCollection = "activity"
)

type ActivityPrice string

const (
	ActivityPriceFree ActivityPrice = "free"
	ActivityPricePaid ActivityPrice = "paid"
)

// ActivityRatingMetric keeps the running aggregate of user ratings for an
// activity. Score is the average over all submitted ratings.
type ActivityRatingMetric struct {
	SumOfScore float64 `bson:"sum" json:"-"`
	Ratings    int64   `bson:"ratings" json:"ratings"`
	Score      float64 `bson:"score" json:"score"`
	LastUpdate int64   `bson:"last_update" json:"-"`
}

// Activity is a single discoverable activity. Rating is the optional
// average quality signal in [0, 5], absent until somebody has rated it.
type Activity struct {
	ID           primitive.ObjectID   `bson:"_id" json:"id"`
	Title        string               `bson:"title" json:"title"`
	Description  string               `bson:"description" json:"description"`
	Category     string               `bson:"category" json:"category"`
	Interests    []string             `bson:"interests" json:"interests"`
	Price        ActivityPrice        `bson:"price" json:"price"`
	Location     *GeoJSON             `bson:"location,omitempty" json:"location,omitempty"`
	Rating       *float64             `bson:"rating,omitempty" json:"rating,omitempty"`
	RatingMetric ActivityRatingMetric `bson:"rating_metric" json:"-"`
	IsNew        bool                 `bson:"is_new" json:"is_new"`
	CreatedAt    time.Time            `bson:"created_at" json:"-"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"-"`
}

// NearbyActivity is a client response structure for geo queries. Distance
// is in kilometers from the queried point.
type NearbyActivity struct {
	Activity `bson:",inline"`
	Distance float64 `bson:"distance" json:"distance"`
}
