package redis

import (
	"context"
	"testing"

	"craft-economy/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_SetAndTop(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lb := NewLeaderboard(client)
	ctx := context.Background()

	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	require.NoError(t, lb.Set(ctx, a, 100))
	require.NoError(t, lb.Set(ctx, b, 5000))
	require.NoError(t, lb.Set(ctx, c, 700))

	top, err := lb.Top(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []ports.BalanceRank{
		{Identity: b, Amount: 5000},
		{Identity: c, Amount: 700},
	}, top)
}

func TestLeaderboard_SetOverwritesScore(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lb := NewLeaderboard(client)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, lb.Set(ctx, id, 100))
	require.NoError(t, lb.Set(ctx, id, 250))

	top, err := lb.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(250), top[0].Amount)
}

func TestLeaderboard_Remove(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lb := NewLeaderboard(client)
	ctx := context.Background()

	id := uuid.New()
	other := uuid.New()
	require.NoError(t, lb.Set(ctx, id, 100))
	require.NoError(t, lb.Set(ctx, other, 50))
	require.NoError(t, lb.Remove(ctx, id))

	top, err := lb.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, other, top[0].Identity)
}

func TestLeaderboard_TopEmptyAndNonPositive(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lb := NewLeaderboard(client)
	ctx := context.Background()

	top, err := lb.Top(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, top)

	top, err = lb.Top(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, top)
}

func TestLeaderboard_TopSkipsForeignMembers(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lb := NewLeaderboard(client)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, lb.Set(ctx, id, 10))
	// a member written by something else entirely
	s.ZAdd("economy:leaderboard", 99, "not-a-uuid")

	top, err := lb.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, id, top[0].Identity)
}
