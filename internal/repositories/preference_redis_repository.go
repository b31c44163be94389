package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trippy/internal/models/db_models"
)

const preferenceKeyPrefix = "trippy:preferences:"

type redisPreferenceRepository struct {
	rdb *redis.Client
}

func NewRedisPreferenceRepository(rdb *redis.Client) PreferenceRepository {
	return &redisPreferenceRepository{rdb: rdb}
}

func preferenceKey(userID string) string {
	return preferenceKeyPrefix + userID
}

func (r *redisPreferenceRepository) Upsert(ctx context.Context, pref *db_models.UserPreference) error {
	now := time.Now().Unix()
	pref.UpdatedAt = now
	if pref.CreatedAt == 0 {
		pref.CreatedAt = now
	}

	data, err := json.Marshal(toDocument(pref))
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return r.rdb.Set(ctx, preferenceKey(pref.UserID), data, 0).Err()
}

func (r *redisPreferenceRepository) GetByUserID(ctx context.Context, userID string) (*db_models.UserPreference, error) {
	data, err := r.rdb.Get(ctx, preferenceKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc preferenceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode preferences for %s: %w", userID, err)
	}
	return doc.toModel(), nil
}
