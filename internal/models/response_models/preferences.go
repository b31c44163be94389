package response_models

type PreferenceSubmission struct {
	Status          string   `json:"status"`
	Recommendations []string `json:"recommendations,omitempty"`
}

type StoredPreferences struct {
	UserID        string   `json:"user_id"`
	City          string   `json:"city"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Budget        int      `json:"budget"`
	Interests     []string `json:"interests"`
	StartingPoint *string  `json:"starting_point,omitempty"`
	UpdatedAt     int64    `json:"updated_at"`
}
