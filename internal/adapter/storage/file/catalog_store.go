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

	"craft-economy/internal/core/domain"

	"github.com/rs/zerolog"
)

// CatalogStore implements ports.CatalogStore on a line-delimited JSON file,
// one price entry per line, rewritten in full on Save.
type CatalogStore struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

// NewCatalogStore creates a catalog store under dir.
func NewCatalogStore(dir string, log zerolog.Logger) *CatalogStore {
	return &CatalogStore{
		path: filepath.Join(dir, catalogFile),
		log:  log,
	}
}

// Load implements ports.CatalogStore. found is false when the file does not
// exist; corrupt lines are discarded individually.
func (s *CatalogStore) Load(ctx context.Context) (domain.Catalog, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	catalog := make(domain.Catalog)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry domain.PriceEntry
		if err := json.Unmarshal(line, &entry); err != nil || entry.Kind == "" {
			s.log.Warn().Str("line", string(line)).Msg("discarding corrupt catalog record")
			continue
		}
		catalog[entry.Kind] = entry
	}
	return catalog, true, nil
}

// Save implements ports.CatalogStore. Entries are written in kind order so
// the file diffs cleanly between saves.
func (s *CatalogStore) Save(ctx context.Context, c domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kinds := make([]domain.ItemKind, 0, len(c))
	for k := range c {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, k := range kinds {
		if err := enc.Encode(c[k]); err != nil {
			return err
		}
	}
	return writeAtomic(s.path, buf.Bytes())
}
