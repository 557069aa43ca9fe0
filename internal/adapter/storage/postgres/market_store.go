package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"craft-economy/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// MarketStore implements ports.MarketStore as a single JSONB document row.
type MarketStore struct {
	pool Pool
	log  zerolog.Logger
}

// NewMarketStore creates a new MarketStore.
func NewMarketStore(pool Pool, log zerolog.Logger) *MarketStore {
	return &MarketStore{pool: pool, log: log}
}

// Load fetches the request-ledger document. A missing row or an undecodable
// document reports found=false so the market starts empty.
func (s *MarketStore) Load(ctx context.Context) (*domain.MarketState, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT state FROM market_state WHERE id = 1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load market state: %w", err)
	}

	var state domain.MarketState
	if err := json.Unmarshal(raw, &state); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt market state")
		return nil, false, nil
	}
	return &state, true, nil
}

// Save upserts the request-ledger document.
func (s *MarketStore) Save(ctx context.Context, state *domain.MarketState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode market state: %w", err)
	}

	query := `INSERT INTO market_state (id, state) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state`

	if _, err := s.pool.Exec(ctx, query, raw); err != nil {
		return fmt.Errorf("save market state: %w", err)
	}
	return nil
}
