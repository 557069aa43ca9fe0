// Package file persists the economy components as JSON documents on local
// disk. Balances and catalog entries are line-delimited records so a single
// corrupt line costs one record, not the whole file; the market state is one
// document. All writes go through a temp-file rename so a crash never leaves
// a half-written file behind.
package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// Filenames under the data directory.
const (
	balancesFile = "balances.jsonl"
	catalogFile  = "catalog.jsonl"
	marketFile   = "market.json"
)

// EnsureDataDir creates the data directory when missing.
func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return nil
}

// writeAtomic replaces path with data via a same-directory temp file and
// rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
