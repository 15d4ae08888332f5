package store

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JN-EPHEC/discovery-api/schema"
	"github.com/JN-EPHEC/discovery-api/score"
)

var (
	ErrActivityNotFound = fmt.Errorf("activity not found")
)

type Activity interface {
	AddActivity(activity schema.Activity) (*schema.Activity, error)
	GetActivity(activityID primitive.ObjectID) (*schema.Activity, error)
	ListActivities() ([]schema.Activity, error)
	NearbyActivities(loc schema.Location, limit int64) ([]schema.NearbyActivity, error)
	RateActivity(activityID primitive.ObjectID, rating float64) (*schema.Activity, error)
}

// AddActivity inserts a new activity. The ID, rating aggregate and
// timestamps are owned by the store.
func (m *mongoDB) AddActivity(activity schema.Activity) (*schema.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ActivityCollection)

	now := time.Now().UTC()
	activity.ID = primitive.NewObjectID()
	activity.Rating = nil
	activity.RatingMetric = schema.ActivityRatingMetric{}
	activity.CreatedAt = now
	activity.UpdatedAt = now

	if _, err := c.InsertOne(ctx, activity); err != nil {
		return nil, err
	}

	return &activity, nil
}

func (m *mongoDB) GetActivity(activityID primitive.ObjectID) (*schema.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ActivityCollection)

	var activity schema.Activity
	if err := c.FindOne(ctx, bson.M{"_id": activityID}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	return &activity, nil
}

// ListActivities returns the full candidate set for scoring. An empty
// collection yields an empty slice, not an error.
func (m *mongoDB) ListActivities() ([]schema.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ActivityCollection)

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}

	activities := []schema.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

// NearbyActivities returns activities around a point ordered by distance,
// closest first. Distances are converted from meters to kilometers with
// one decimal place.
func (m *mongoDB) NearbyActivities(loc schema.Location, limit int64) ([]schema.NearbyActivity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ActivityCollection)

	pipeline := mongo.Pipeline{
		geoNearAggregate(loc),
		limitAggregate(limit),
	}

	cursor, err := c.Aggregate(ctx, pipeline, options.Aggregate().SetMaxTime(defaultTimeout))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("fail to aggregate nearby activities")
		return nil, err
	}

	results := []schema.NearbyActivity{}
	for cursor.Next(ctx) {
		var activity schema.NearbyActivity
		if err := cursor.Decode(&activity); err != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("fail to decode nearby activity")
			continue
		}
		activity.Distance = math.Round(activity.Distance/100) / 10
		results = append(results, activity)
	}

	return results, nil
}

// RateActivity folds one user rating into the activity aggregate and
// refreshes the average that feeds the popularity score.
func (m *mongoDB) RateActivity(activityID primitive.ObjectID, rating float64) (*schema.Activity, error) {
	activity, err := m.GetActivity(activityID)
	if err != nil {
		return nil, err
	}

	count, sum, average := score.RatingAverage(activity.RatingMetric.Ratings, activity.RatingMetric.SumOfScore, rating)
	metric := schema.ActivityRatingMetric{
		SumOfScore: sum,
		Ratings:    count,
		Score:      average,
		LastUpdate: time.Now().Unix(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ActivityCollection)

	update := bson.M{
		"$set": bson.M{
			"rating_metric": metric,
			"rating":        average,
			"updated_at":    time.Now().UTC(),
		},
	}

	result, err := c.UpdateOne(ctx, bson.M{"_id": activityID}, update)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithField("activity_id", activityID.Hex()).WithError(err).Error("fail to update activity rating")
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, ErrActivityNotFound
	}

	activity.Rating = &average
	activity.RatingMetric = metric

	return activity, nil
}

func geoNearAggregate(loc schema.Location) bson.D {
	return bson.D{{Key: "$geoNear", Value: bson.M{
		"near":          bson.M{"type": "Point", "coordinates": bson.A{loc.Longitude, loc.Latitude}},
		"distanceField": "distance",
		"spherical":     true,
	}}}
}

func limitAggregate(number int64) bson.D {
	return bson.D{{Key: "$limit", Value: number}}
}
