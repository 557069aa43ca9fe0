package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"craft-economy/internal/core/domain"

	"github.com/rs/zerolog"
)

// MarketStore implements ports.MarketStore as one JSON document holding the
// full request-ledger state.
type MarketStore struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

// NewMarketStore creates a market store under dir.
func NewMarketStore(dir string, log zerolog.Logger) *MarketStore {
	return &MarketStore{
		path: filepath.Join(dir, marketFile),
		log:  log,
	}
}

// Load implements ports.MarketStore. A missing or corrupt document reports
// found=false so the market starts empty.
func (s *MarketStore) Load(ctx context.Context) (*domain.MarketState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var state domain.MarketState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("discarding corrupt market state")
		return nil, false, nil
	}
	return &state, true, nil
}

// Save implements ports.MarketStore.
func (s *MarketStore) Save(ctx context.Context, state *domain.MarketState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Compact encoding keeps raw item metadata byte-stable across round trips.
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return writeAtomic(s.path, data)
}
