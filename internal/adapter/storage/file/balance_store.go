package file

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// balanceRecord is one line of balances.jsonl.
type balanceRecord struct {
	Identity string `json:"identity"`
	Amount   int64  `json:"amount"`
}

// BalanceStore implements ports.BalanceStore on a line-delimited JSON file.
// The store keeps the full map in memory and rewrites the file on every
// mutation; the data set is small (one record per player).
type BalanceStore struct {
	mu       sync.Mutex
	path     string
	balances map[uuid.UUID]int64
	loaded   bool
	log      zerolog.Logger
}

// NewBalanceStore creates a balance store under dir.
func NewBalanceStore(dir string, log zerolog.Logger) *BalanceStore {
	return &BalanceStore{
		path: filepath.Join(dir, balancesFile),
		log:  log,
	}
}

// Load reads every valid record, discarding corrupt lines individually. A
// missing file yields an empty map.
func (s *BalanceStore) Load(ctx context.Context) (map[uuid.UUID]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances = make(map[uuid.UUID]int64)
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[uuid.UUID]int64{}, nil
		}
		return nil, err
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec balanceRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			s.log.Warn().Str("line", string(line)).Msg("discarding corrupt balance record")
			continue
		}
		id, err := uuid.Parse(rec.Identity)
		if err != nil {
			s.log.Warn().Str("identity", rec.Identity).Msg("discarding balance record with bad identity")
			continue
		}
		s.balances[id] = rec.Amount
	}

	out := make(map[uuid.UUID]int64, len(s.balances))
	for id, amount := range s.balances {
		out[id] = amount
	}
	return out, nil
}

// flushLocked rewrites the file from the in-memory map in stable identity
// order. Caller holds s.mu.
func (s *BalanceStore) flushLocked() error {
	ids := make([]uuid.UUID, 0, len(s.balances))
	for id := range s.balances {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, id := range ids {
		if err := enc.Encode(balanceRecord{Identity: id.String(), Amount: s.balances[id]}); err != nil {
			return err
		}
	}
	return writeAtomic(s.path, buf.Bytes())
}

// Put implements ports.BalanceStore.
func (s *BalanceStore) Put(ctx context.Context, id uuid.UUID, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.balances = make(map[uuid.UUID]int64)
		s.loaded = true
	}
	s.balances[id] = amount
	return s.flushLocked()
}

// Delete implements ports.BalanceStore.
func (s *BalanceStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	delete(s.balances, id)
	return s.flushLocked()
}

// SaveAll implements ports.BalanceStore.
func (s *BalanceStore) SaveAll(ctx context.Context, balances map[uuid.UUID]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances = make(map[uuid.UUID]int64, len(balances))
	for id, amount := range balances {
		s.balances[id] = amount
	}
	s.loaded = true
	return s.flushLocked()
}
