package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trippy/internal/events"
	"trippy/internal/models/db_models"
	"trippy/internal/models/request_models"
	"trippy/pkg/utils"
)

type memoryPreferenceRepo struct {
	records map[string]db_models.UserPreference
	err     error
}

func newMemoryPreferenceRepo() *memoryPreferenceRepo {
	return &memoryPreferenceRepo{records: map[string]db_models.UserPreference{}}
}

func (r *memoryPreferenceRepo) Upsert(_ context.Context, pref *db_models.UserPreference) error {
	if r.err != nil {
		return r.err
	}
	r.records[pref.UserID] = *pref
	return nil
}

func (r *memoryPreferenceRepo) GetByUserID(_ context.Context, userID string) (*db_models.UserPreference, error) {
	if r.err != nil {
		return nil, r.err
	}
	rec, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type stubRecommendations struct {
	calls []string
}

func (s *stubRecommendations) RecommendPlaces(_ context.Context, city string) []string {
	s.calls = append(s.calls, city)
	return []string{"Louvre", "Musée d'Orsay"}
}

func newTestPreferenceService(repo *memoryPreferenceRepo, recs *stubRecommendations, pub events.Publisher) PreferenceServiceInterface {
	return NewPreferenceService(repo, recs, pub, nil, zap.NewNop())
}

func TestNormalizeInterests(t *testing.T) {
	got := NormalizeInterests([]string{" Culture", "", "Food", "Culture ", "  ", "Art"})
	assert.Equal(t, []string{"Culture", "Food", "Art"}, got)
	assert.Empty(t, NormalizeInterests(nil))
}

func TestSavePreferencesWithInterests(t *testing.T) {
	repo := newMemoryPreferenceRepo()
	recs := &stubRecommendations{}
	pub := &recordingPublisher{}
	svc := newTestPreferenceService(repo, recs, pub)
	prefs := parisPreferences()
	prefs.UserID = "u-1"
	prefs.Interests = []string{"Culture", " Culture"}

	got, err := svc.SavePreferences(context.Background(), prefs)

	require.NoError(t, err)
	assert.Equal(t, PreferencesCollected, got.Status)
	assert.Nil(t, got.Recommendations)
	assert.Empty(t, recs.calls)
	assert.Equal(t, []string{"Culture"}, []string(repo.records["u-1"].Interests))
	assert.Equal(t, []string{events.SubjectPreferencesUpdated}, pub.subjects)
}

func TestSavePreferencesWithoutInterestsRecommends(t *testing.T) {
	recs := &stubRecommendations{}
	svc := newTestPreferenceService(newMemoryPreferenceRepo(), recs, nil)
	prefs := parisPreferences()
	prefs.UserID = "u-2"
	prefs.Interests = []string{" "}

	got, err := svc.SavePreferences(context.Background(), prefs)

	require.NoError(t, err)
	assert.Equal(t, []string{"Louvre", "Musée d'Orsay"}, got.Recommendations)
	assert.Equal(t, []string{"Paris"}, recs.calls)
}

func TestSavePreferencesOverwritesPreviousSubmission(t *testing.T) {
	repo := newMemoryPreferenceRepo()
	svc := newTestPreferenceService(repo, &stubRecommendations{}, nil)
	prefs := parisPreferences()
	prefs.UserID = "u-3"

	_, err := svc.SavePreferences(context.Background(), prefs)
	require.NoError(t, err)
	prefs.City = "Lyon"
	prefs.Budget = 40
	_, err = svc.SavePreferences(context.Background(), prefs)
	require.NoError(t, err)

	stored, err := svc.GetPreferences(context.Background(), "u-3")
	require.NoError(t, err)
	assert.Equal(t, "Lyon", stored.City)
	assert.Equal(t, 40, stored.Budget)
	assert.Len(t, repo.records, 1)
}

func TestSavePreferencesStoreFailureIsHardError(t *testing.T) {
	repo := newMemoryPreferenceRepo()
	repo.err = errors.New("connection refused")
	recs := &stubRecommendations{}
	pub := &recordingPublisher{}
	svc := newTestPreferenceService(repo, recs, pub)
	prefs := parisPreferences()
	prefs.UserID = "u-4"
	prefs.Interests = nil

	_, err := svc.SavePreferences(context.Background(), prefs)

	require.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, recs.calls)
	assert.Empty(t, pub.subjects)
}

func TestSavePreferencesValidation(t *testing.T) {
	svc := newTestPreferenceService(newMemoryPreferenceRepo(), &stubRecommendations{}, nil)

	missingUser := parisPreferences()
	_, err := svc.SavePreferences(context.Background(), missingUser)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	negative := parisPreferences()
	negative.UserID = "u-5"
	negative.Budget = -1
	_, err = svc.SavePreferences(context.Background(), negative)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetPreferencesNotFound(t *testing.T) {
	svc := newTestPreferenceService(newMemoryPreferenceRepo(), &stubRecommendations{}, nil)

	_, err := svc.GetPreferences(context.Background(), "nobody")

	require.ErrorIs(t, err, utils.ErrPreferencesNotFound)
}

func TestGetPreferencesStoreFailureIsReadError(t *testing.T) {
	repo := newMemoryPreferenceRepo()
	repo.err = errors.New("connection reset")
	svc := newTestPreferenceService(repo, &stubRecommendations{}, nil)

	_, err := svc.GetPreferences(context.Background(), "u-7")

	require.ErrorIs(t, err, utils.ErrDatabaseReadError)
	assert.NotErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetPreferencesReturnsStoredShape(t *testing.T) {
	repo := newMemoryPreferenceRepo()
	svc := newTestPreferenceService(repo, &stubRecommendations{}, nil)
	start := "Hotel de Ville"
	prefs := request_models.TripPreferences{UserID: "u-6", City: "Paris", Budget: 10, StartingPoint: &start}
	_, err := svc.SavePreferences(context.Background(), prefs)
	require.NoError(t, err)

	got, err := svc.GetPreferences(context.Background(), " u-6 ")

	require.NoError(t, err)
	assert.Equal(t, "u-6", got.UserID)
	assert.Equal(t, []string{}, got.Interests)
	require.NotNil(t, got.StartingPoint)
	assert.Equal(t, "Hotel de Ville", *got.StartingPoint)
}
