package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// JSONStore layers JSON (de)serialization over a Store. A missing key or a
// value that fails to parse is reported as absent rather than as an error,
// so one corrupted key cannot take down the whole session. Write failures
// are propagated.
type JSONStore struct {
	store  Store
	logger *zap.Logger
}

// NewJSON wraps a Store with the JSON codec.
func NewJSON(s Store, logger *zap.Logger) *JSONStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONStore{store: s, logger: logger}
}

// Get unmarshals the stored value into dest, which must be a non-nil
// pointer. The boolean reports presence. Decoding happens into a scratch
// value first: a payload that fails mid-decode must not leave dest
// partially populated, it reads as absent like any other corrupt value.
func (j *JSONStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := j.store.Get(ctx, key)
	if err != nil {
		if appErrors.HasCode(err, appErrors.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return false, fmt.Errorf("destination for %s must be a non-nil pointer", key)
	}

	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		j.logger.Warn("discarding unparsable stored value",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}
	rv.Elem().Set(scratch.Elem())

	return true, nil
}

// Set marshals value and persists it under key.
func (j *JSONStore) Set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}
	return j.store.Set(ctx, key, payload)
}

// Remove deletes the key.
func (j *JSONStore) Remove(ctx context.Context, key string) error {
	return j.store.Remove(ctx, key)
}

// Clear wipes the entire store.
func (j *JSONStore) Clear(ctx context.Context) error {
	return j.store.Clear(ctx)
}
