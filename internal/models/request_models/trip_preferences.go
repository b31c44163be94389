package request_models

import "strings"

// TripPreferences is the form payload shared by preference submission and
// itinerary generation. UserID is only required when preferences are stored.
type TripPreferences struct {
	UserID        string   `json:"user_id"`
	City          string   `json:"city" binding:"required"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Budget        int      `json:"budget" binding:"gte=0"`
	Interests     []string `json:"interests"`
	StartingPoint *string  `json:"starting_point"`
}

// StartingPointOr returns the starting point, or fallback when it is absent or blank.
func (p TripPreferences) StartingPointOr(fallback string) string {
	if p.StartingPoint == nil {
		return fallback
	}
	if sp := strings.TrimSpace(*p.StartingPoint); sp != "" {
		return sp
	}
	return fallback
}
