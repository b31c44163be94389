package db_models

import (
	"github.com/lib/pq"

	"trippy/internal/models/request_models"
	"trippy/internal/models/response_models"
)

// UserPreference holds the latest preferences submitted by one user.
// There is no history: each submission overwrites the row keyed by UserID.
type UserPreference struct {
	BaseModel
	UserID        string `gorm:"uniqueIndex;not null"`
	City          string
	StartTime     string
	EndTime       string
	Budget        int
	Interests     pq.StringArray `gorm:"type:text[]"`
	StartingPoint *string
}

func NewUserPreference(p request_models.TripPreferences) UserPreference {
	return UserPreference{
		UserID:        p.UserID,
		City:          p.City,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Budget:        p.Budget,
		Interests:     pq.StringArray(p.Interests),
		StartingPoint: p.StartingPoint,
	}
}

func (u UserPreference) ToResponse() response_models.StoredPreferences {
	interests := []string(u.Interests)
	if interests == nil {
		interests = []string{}
	}
	return response_models.StoredPreferences{
		UserID:        u.UserID,
		City:          u.City,
		StartTime:     u.StartTime,
		EndTime:       u.EndTime,
		Budget:        u.Budget,
		Interests:     interests,
		StartingPoint: u.StartingPoint,
		UpdatedAt:     u.UpdatedAt,
	}
}
