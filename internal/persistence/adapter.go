package persistence

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/errors"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/models"
	"github.com/julianstephens/agenda/internal/storage"
)

// Adapter reads and writes the whole week under a single storage key.
type Adapter struct {
	kv  storage.Provider
	key string
}

func New(kv storage.Provider) *Adapter {
	return &Adapter{kv: kv, key: constants.StorageKey}
}

// Load returns the persisted schedule. The second result is false when
// nothing usable is stored; the caller then starts from a fresh week.
func (a *Adapter) Load() (models.Schedule, bool) {
	s, ok, err := a.Open()
	if err != nil {
		logger.Warn("Schedule read failed, starting from a fresh week", "key", a.key, "error", err)
	}
	return s, ok
}

// Open is Load for callers that must not start over after a failed read.
// A missing or malformed payload reports false; any other storage error is
// returned, since a fresh week saved on top would replace the stored one.
func (a *Adapter) Open() (models.Schedule, bool, error) {
	s, err := a.Read()
	switch {
	case err == nil:
		return s, true, nil
	case stderrors.Is(err, storage.ErrNotFound):
		return models.Schedule{}, false, nil
	case stderrors.Is(err, errors.ErrMalformedState):
		logger.Warn("Discarding persisted schedule", "key", a.key, "error", err)
		return models.Schedule{}, false, nil
	}
	return models.Schedule{}, false, fmt.Errorf("failed to read schedule: %w", err)
}

// Read is Load with the reason for absence preserved.
func (a *Adapter) Read() (models.Schedule, error) {
	payload, err := a.kv.Get(a.key)
	if err != nil {
		return models.Schedule{}, err
	}

	var s models.Schedule
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return models.Schedule{}, fmt.Errorf("%w: %w", errors.ErrMalformedState, err)
	}
	return s, nil
}

// Save serializes and writes the full schedule.
func (a *Adapter) Save(s models.Schedule) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStorageWrite, err)
	}
	if err := a.kv.Set(a.key, string(payload)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStorageWrite, err)
	}
	logger.Debug("Schedule saved", "key", a.key, "bytes", len(payload))
	return nil
}
