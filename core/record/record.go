// Package record is the key-value record store every portal component persists through.
// Values are JSON documents stored under plain string keys.
package record

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

type (
	// Store reads and writes single records. Implementations are safe for concurrent use
	// at single-key granularity; there is no cross-key atomicity.
	Store interface {
		// Read returns the raw value under key. found is false when the key is absent.
		Read(ctx context.Context, key string) (value []byte, found bool, err error)
		Write(ctx context.Context, key string, value []byte) error
		Remove(ctx context.Context, key string) error
	}

	scopedStore struct {
		store  Store
		prefix string
	}
)

var _ Store = (*scopedStore)(nil) // interface compliance check

// ProfilePrefix returns the key prefix of a profile's namespace.
func ProfilePrefix(profileID string) string {
	return "profile:" + profileID + ":"
}

// Scope returns a Store whose keys all live in the namespace of profileID.
func Scope(store Store, profileID string) Store {
	return &scopedStore{store: store, prefix: ProfilePrefix(profileID)}
}

func (s *scopedStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	return s.store.Read(ctx, s.prefix+key)
}

func (s *scopedStore) Write(ctx context.Context, key string, value []byte) error {
	return s.store.Write(ctx, s.prefix+key, value)
}

func (s *scopedStore) Remove(ctx context.Context, key string) error {
	return s.store.Remove(ctx, s.prefix+key)
}

// ReadJSON decodes the record under key into dst.
// It reports false, leaving dst untouched, when the key is absent or its content is not valid JSON for dst.
func ReadJSON(ctx context.Context, store Store, key string, dst interface{}) (bool, error) {
	raw, found, err := store.Read(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "reading %q", key)
	}
	if !found {
		return false, nil
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return false, nil // corrupted content reads as absence
	}
	return true, nil
}

// ReadList decodes a JSON array stored under key.
// Absent, malformed or non-array content yields an empty, non-nil list.
func ReadList[T any](ctx context.Context, store Store, key string) ([]T, error) {
	raw, found, err := store.Read(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", key)
	}
	list := make([]T, 0)
	if !found || !isArray(raw) {
		return list, nil
	}
	if err = json.Unmarshal(raw, &list); err != nil || list == nil {
		return make([]T, 0), nil
	}
	return list, nil
}

// WriteJSON encodes value and stores it under key.
func WriteJSON(ctx context.Context, store Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	if err = store.Write(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "writing %q", key)
	}
	return nil
}

func isArray(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
