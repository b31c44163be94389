package repositories

import (
	"github.com/lib/pq"

	"trippy/internal/models/db_models"
)

// preferenceDocument is the stored shape for the key-value and document
// backends. The user id doubles as the key / _id.
type preferenceDocument struct {
	UserID        string   `json:"user_id" bson:"_id"`
	City          string   `json:"city" bson:"city"`
	StartTime     string   `json:"start_time" bson:"start_time"`
	EndTime       string   `json:"end_time" bson:"end_time"`
	Budget        int      `json:"budget" bson:"budget"`
	Interests     []string `json:"interests" bson:"interests"`
	StartingPoint *string  `json:"starting_point,omitempty" bson:"starting_point,omitempty"`
	CreatedAt     int64    `json:"created_at" bson:"created_at"`
	UpdatedAt     int64    `json:"updated_at" bson:"updated_at"`
}

func toDocument(p *db_models.UserPreference) preferenceDocument {
	return preferenceDocument{
		UserID:        p.UserID,
		City:          p.City,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Budget:        p.Budget,
		Interests:     []string(p.Interests),
		StartingPoint: p.StartingPoint,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (d preferenceDocument) toModel() *db_models.UserPreference {
	p := &db_models.UserPreference{
		UserID:        d.UserID,
		City:          d.City,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		Budget:        d.Budget,
		Interests:     pq.StringArray(d.Interests),
		StartingPoint: d.StartingPoint,
	}
	p.CreatedAt = d.CreatedAt
	p.UpdatedAt = d.UpdatedAt
	return p
}
