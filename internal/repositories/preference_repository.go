package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trippy/internal/models/db_models"
)

// PreferenceRepository keeps one record per user. Upsert overwrites whatever
// was stored before; GetByUserID returns nil, nil when nothing is stored.
type PreferenceRepository interface {
	Upsert(ctx context.Context, pref *db_models.UserPreference) error
	GetByUserID(ctx context.Context, userID string) (*db_models.UserPreference, error)
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *db_models.UserPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"city", "start_time", "end_time", "budget", "interests", "starting_point", "updated_at",
			}),
		}).
		Create(pref).Error
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (*db_models.UserPreference, error) {
	var pref db_models.UserPreference
	err := r.db.WithContext(ctx).First(&pref, "user_id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pref, nil
}
