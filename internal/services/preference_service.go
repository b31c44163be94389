package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"trippy/internal/events"
	"trippy/internal/metrics"
	"trippy/internal/models/db_models"
	"trippy/internal/models/request_models"
	"trippy/internal/models/response_models"
	"trippy/internal/repositories"
	"trippy/pkg/utils"
)

const PreferencesCollected = "Preferences collected successfully"

type PreferenceServiceInterface interface {
	// SavePreferences stores the submission and, when no interests were
	// given, answers with recommended places for the city instead.
	SavePreferences(ctx context.Context, prefs request_models.TripPreferences) (*response_models.PreferenceSubmission, error)
	GetPreferences(ctx context.Context, userID string) (*response_models.StoredPreferences, error)
}

type PreferenceService struct {
	repo            repositories.PreferenceRepository
	recommendations RecommendationServiceInterface
	publisher       events.Publisher
	metrics         *metrics.Collector
	logger          *zap.Logger
}

func NewPreferenceService(
	repo repositories.PreferenceRepository,
	recommendations RecommendationServiceInterface,
	publisher events.Publisher,
	m *metrics.Collector,
	logger *zap.Logger,
) PreferenceServiceInterface {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &PreferenceService{
		repo:            repo,
		recommendations: recommendations,
		publisher:       publisher,
		metrics:         m,
		logger:          logger,
	}
}

// NormalizeInterests trims entries, drops blanks and duplicates, and keeps
// the submitted order.
func NormalizeInterests(interests []string) []string {
	trimmed := lo.Map(interests, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Uniq(lo.Compact(trimmed))
}

func (s *PreferenceService) SavePreferences(ctx context.Context, prefs request_models.TripPreferences) (*response_models.PreferenceSubmission, error) {
	prefs.UserID = strings.TrimSpace(prefs.UserID)
	if prefs.UserID == "" {
		return nil, fmt.Errorf("user_id is required: %w", utils.ErrInvalidInput)
	}
	if strings.TrimSpace(prefs.City) == "" {
		return nil, fmt.Errorf("city is required: %w", utils.ErrInvalidInput)
	}
	if prefs.Budget < 0 {
		return nil, fmt.Errorf("budget must not be negative: %w", utils.ErrInvalidInput)
	}
	prefs.Interests = NormalizeInterests(prefs.Interests)

	record := db_models.NewUserPreference(prefs)
	if err := s.repo.Upsert(ctx, &record); err != nil {
		s.metrics.ObservePreferenceWrite("error")
		s.logger.Error("failed to store preferences", zap.String("user_id", prefs.UserID), zap.Error(err))
		return nil, fmt.Errorf("upsert preferences for %s: %v: %w", prefs.UserID, err, utils.ErrDatabaseError)
	}
	s.metrics.ObservePreferenceWrite("ok")

	result := &response_models.PreferenceSubmission{Status: PreferencesCollected}
	if len(prefs.Interests) == 0 {
		result.Recommendations = s.recommendations.RecommendPlaces(ctx, prefs.City)
	}

	s.publisher.Publish(events.SubjectPreferencesUpdated, events.PreferencesUpdated{
		UserID:          prefs.UserID,
		City:            prefs.City,
		Interests:       prefs.Interests,
		Recommendations: result.Recommendations,
		UpdatedAt:       record.UpdatedAt,
	})
	s.logger.Info("preferences stored",
		zap.String("user_id", prefs.UserID), zap.String("city", prefs.City), zap.Int("interests", len(prefs.Interests)))
	return result, nil
}

func (s *PreferenceService) GetPreferences(ctx context.Context, userID string) (*response_models.StoredPreferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", utils.ErrInvalidInput)
	}

	record, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to read preferences", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("read preferences for %s: %v: %w", userID, err, utils.ErrDatabaseReadError)
	}
	if record == nil {
		return nil, utils.ErrPreferencesNotFound
	}

	resp := record.ToResponse()
	return &resp, nil
}
