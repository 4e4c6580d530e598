package memdb

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/campusdesk/portal/core/record"
)

// DB keeps every record in process memory. It is lost on restart.
type DB struct {
	sync.RWMutex
	table map[string][]byte
}

var _ record.Store = (*DB)(nil) // interface compliance check

func Open() *DB {
	return &DB{table: make(map[string][]byte)}
}

func (db *DB) Read(_ context.Context, key string) ([]byte, bool, error) {
	db.RLock()
	defer db.RUnlock()

	val, ok := db.table[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (db *DB) Write(_ context.Context, key string, value []byte) error {
	db.Lock()
	defer db.Unlock()

	val := make([]byte, len(value))
	copy(val, value)
	db.table[key] = val
	return nil
}

func (db *DB) Remove(_ context.Context, key string) error {
	db.Lock()
	defer db.Unlock()
	delete(db.table, key)
	return nil
}

// Keys returns the sorted keys starting with prefix.
func (db *DB) Keys(prefix string) []string {
	db.RLock()
	defer db.RUnlock()

	keys := make([]string, 0, len(db.table))
	for k := range db.table {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
