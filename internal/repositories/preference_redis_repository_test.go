package repositories

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepository(t *testing.T) (PreferenceRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisPreferenceRepository(rdb), mr
}

func TestRedisUpsertOverwritesSingleKey(t *testing.T) {
	repo, mr := newRedisRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, parisPreference("u-1")))
	second := parisPreference("u-1")
	second.City = "Lyon"
	second.Interests = pq.StringArray{"Wine"}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, []string{"trippy:preferences:u-1"}, mr.Keys())

	got, err := repo.GetByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lyon", got.City)
	assert.Equal(t, pq.StringArray{"Wine"}, got.Interests)
	assert.NotZero(t, got.UpdatedAt)
}

func TestRedisUpsertStampsTimestamps(t *testing.T) {
	repo, _ := newRedisRepository(t)
	pref := parisPreference("u-2")
	pref.CreatedAt, pref.UpdatedAt = 0, 0

	require.NoError(t, repo.Upsert(context.Background(), pref))

	assert.NotZero(t, pref.CreatedAt)
	assert.Equal(t, pref.CreatedAt, pref.UpdatedAt)
}

func TestRedisGetMissingReturnsNil(t *testing.T) {
	repo, _ := newRedisRepository(t)

	got, err := repo.GetByUserID(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisGetCorruptValueFails(t *testing.T) {
	repo, mr := newRedisRepository(t)
	require.NoError(t, mr.Set("trippy:preferences:u-3", "{not json"))

	got, err := repo.GetByUserID(context.Background(), "u-3")

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestRedisGetUnreachableFails(t *testing.T) {
	repo, mr := newRedisRepository(t)
	mr.Close()

	_, err := repo.GetByUserID(context.Background(), "u-1")

	assert.Error(t, err)
}
