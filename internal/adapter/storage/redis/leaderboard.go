package redis

import (
	"context"
	"fmt"

	"craft-economy/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Leaderboard implements ports.LeaderboardStore on a Redis sorted set keyed
// by identity, scored by balance.
type Leaderboard struct {
	client *goredis.Client
	key    string
}

// NewLeaderboard creates a new Redis-backed leaderboard.
func NewLeaderboard(client *goredis.Client) *Leaderboard {
	return &Leaderboard{
		client: client,
		key:    "economy:leaderboard",
	}
}

// Set records an identity's balance.
func (l *Leaderboard) Set(ctx context.Context, id uuid.UUID, amount int64) error {
	err := l.client.ZAdd(ctx, l.key, goredis.Z{
		Score:  float64(amount),
		Member: id.String(),
	}).Err()
	if err != nil {
		return fmt.Errorf("leaderboard zadd: %w", err)
	}
	return nil
}

// Remove drops an identity from the ranking.
func (l *Leaderboard) Remove(ctx context.Context, id uuid.UUID) error {
	if err := l.client.ZRem(ctx, l.key, id.String()).Err(); err != nil {
		return fmt.Errorf("leaderboard zrem: %w", err)
	}
	return nil
}

// Top returns the n highest balances in descending order.
func (l *Leaderboard) Top(ctx context.Context, n int) ([]ports.BalanceRank, error) {
	if n <= 0 {
		return nil, nil
	}
	entries, err := l.client.ZRevRangeWithScores(ctx, l.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard zrevrange: %w", err)
	}

	ranks := make([]ports.BalanceRank, 0, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		ranks = append(ranks, ports.BalanceRank{Identity: id, Amount: int64(e.Score)})
	}
	return ranks, nil
}
