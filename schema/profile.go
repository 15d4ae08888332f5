package schema

import (
	"time"
)

const (
	ProfileCollection = "profile"
)

// Profile is the account profile of a user. Interests are stored normalized
// (lower-cased, trimmed). Location is the resolved coordinate of the city a
// user declared; it is absent until a city has been geocoded.
type Profile struct {
	ID            string                 `bson:"id" json:"id"`
	AccountNumber string                 `bson:"account_number" json:"account_number"`
	Interests     []string               `bson:"interests" json:"interests"`
	City          string                 `bson:"city" json:"city"`
	Location      *GeoJSON               `bson:"location,omitempty" json:"-"`
	Metadata      map[string]interface{} `bson:"metadata" json:"metadata"`
	CreatedAt     time.Time              `bson:"created_at" json:"-"`
	UpdatedAt     time.Time              `bson:"updated_at" json:"-"`
}
