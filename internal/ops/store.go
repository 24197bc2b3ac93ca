package ops

import (
	"errors"

	"github.com/jacksmith/pt/internal/model"
	"go.uber.org/zap"
)

// Persister writes a full snapshot of the store.
// The concrete implementation is storage.Storage; tests use an in-memory fake.
type Persister interface {
	Save(s *model.Store) error
}

// Backend loads and saves the store.
type Backend interface {
	Persister
	Load() (*model.Store, []model.ParseWarning, error)
}

// LoadResult reports problems found while loading.
type LoadResult struct {
	// Warnings lists lines skipped while parsing the data file.
	Warnings []model.ParseWarning
	// Warning is set when the data or state file could not be read.
	Warning error
}

// Open loads the store from b and returns an engine that saves back to b.
// Loading never fails: unreadable data is reported in the result and the
// engine starts from whatever could be loaded. When the error wraps
// model.ErrDataUnreadable the engine never saves, so the existing file is
// left as it is.
func Open(b Backend, opts ...Option) (*Engine, LoadResult) {
	store, warnings, err := b.Load()
	e := New(store, b, opts...)

	for _, w := range warnings {
		e.logger.Warn("skipped malformed line", zapLine(w)...)
	}
	if err != nil {
		e.logger.Warn("load incomplete", zap.Error(err))
	}
	if errors.Is(err, model.ErrDataUnreadable) {
		blocked := &model.PersistenceError{Op: "save", Err: model.ErrDataUnreadable}
		var perr *model.PersistenceError
		if errors.As(err, &perr) {
			blocked.Path = perr.Path
		}
		e.saveBlocked = blocked
	}

	return e, LoadResult{Warnings: warnings, Warning: err}
}
