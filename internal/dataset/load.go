package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrSourceUnavailable indicates the backing data file does not exist.
// Callers should present this as a recoverable configuration problem
// rather than crashing.
var ErrSourceUnavailable = errors.New("data source unavailable")

var (
	loadMu    sync.Mutex
	loadCache = make(map[string]*Table)
)

// Load reads the concept table at the given path, dispatching on file
// extension (.db/.sqlite/.sqlite3 for SQLite snapshots, CSV otherwise).
//
// The result is memoized per path for the process lifetime: the first
// call loads and caches, later calls return the same immutable snapshot.
// Safe for concurrent use.
func Load(path string) (*Table, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if t, ok := loadCache[path]; ok {
		return t, nil
	}

	t, err := read(path)
	if err != nil {
		return nil, err
	}
	loadCache[path] = t
	return t, nil
}

// ResetCache clears the memoized tables. Useful for testing.
func ResetCache() {
	loadMu.Lock()
	defer loadMu.Unlock()
	loadCache = make(map[string]*Table)
}

func read(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, path)
		}
		return nil, fmt.Errorf("checking data file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return readSQLite(path)
	default:
		return readCSV(path)
	}
}
