package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trippy/internal/models/db_models"
)

const PreferenceCollection = "preferences"

type mongoPreferenceRepository struct {
	coll *mongo.Collection
}

func NewMongoPreferenceRepository(db *mongo.Database) PreferenceRepository {
	return &mongoPreferenceRepository{coll: db.Collection(PreferenceCollection)}
}

func (r *mongoPreferenceRepository) Upsert(ctx context.Context, pref *db_models.UserPreference) error {
	now := time.Now().Unix()
	pref.UpdatedAt = now
	doc := toDocument(pref)

	filter := bson.M{"_id": pref.UserID}
	update := bson.M{
		"$set": bson.M{
			"city":           doc.City,
			"start_time":     doc.StartTime,
			"end_time":       doc.EndTime,
			"budget":         doc.Budget,
			"interests":      doc.Interests,
			"starting_point": doc.StartingPoint,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *mongoPreferenceRepository) GetByUserID(ctx context.Context, userID string) (*db_models.UserPreference, error) {
	var doc preferenceDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}
