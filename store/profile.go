package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JN-EPHEC/discovery-api/schema"
)

var (
	ErrProfileNotFound   = fmt.Errorf("profile not found")
	ErrAccountTaken      = fmt.Errorf("account number is already registered")
	ErrProfileNotUpdated = fmt.Errorf("profile not updated")
)

type Profile interface {
	CreateProfile(accountNumber string, interests []string, metadata map[string]interface{}) (*schema.Profile, error)
	GetProfileByAccountNumber(accountNumber string) (*schema.Profile, error)
	UpdateProfileInterests(accountNumber string, interests []string) error
	UpdateProfileCity(accountNumber, city string, location *schema.Location) error
	DeleteProfile(accountNumber string) error
}

// CreateProfile creates a profile with a fresh profile ID. Interests are
// normalized before they are stored.
func (m *mongoDB) CreateProfile(accountNumber string, interests []string, metadata map[string]interface{}) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	count, err := c.CountDocuments(ctx, bson.M{"account_number": accountNumber})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAccountTaken
	}

	now := time.Now().UTC()
	profile := schema.Profile{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Interests:     normalizeInterests(interests),
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := c.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &profile, nil
}

func (m *mongoDB) GetProfileByAccountNumber(accountNumber string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

func (m *mongoDB) UpdateProfileInterests(accountNumber string, interests []string) error {
	update := bson.M{
		"$set": bson.M{
			"interests":  normalizeInterests(interests),
			"updated_at": time.Now().UTC(),
		},
	}

	return m.updateProfile(accountNumber, update)
}

// UpdateProfileCity stores the declared city together with its resolved
// coordinate. A nil location clears the stored coordinate, so an
// unresolvable city degrades to a profile without location.
func (m *mongoDB) UpdateProfileCity(accountNumber, city string, location *schema.Location) error {
	set := bson.M{
		"city":       city,
		"updated_at": time.Now().UTC(),
	}

	update := bson.M{"$set": set}
	if location != nil {
		set["location"] = schema.NewGeoJSONPoint(*location)
	} else {
		update["$unset"] = bson.M{"location": 1}
	}

	return m.updateProfile(accountNumber, update)
}

func (m *mongoDB) DeleteProfile(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.DeleteOne(ctx, bson.M{"account_number": accountNumber})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (m *mongoDB) updateProfile(accountNumber string, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.UpdateOne(ctx, bson.M{"account_number": accountNumber}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// normalizeInterests lower-cases, trims and de-duplicates interest tags,
// keeping the original order of first appearance.
func normalizeInterests(interests []string) []string {
	normalized := make([]string, 0, len(interests))
	seen := map[string]struct{}{}
	for _, tag := range interests {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}
