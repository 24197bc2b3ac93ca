// Package ops implements the business operations of pt on top of model.Store.
package ops

import (
	"github.com/jacksmith/pt/internal/model"
	"go.uber.org/zap"
)

// Engine applies validated mutations to a store and saves after each one.
// It is not safe for concurrent use.
type Engine struct {
	store     *model.Store
	persister Persister
	logger    *zap.Logger

	allowEmptyClientName bool
	lowStockThreshold    int

	// saveBlocked is set when the data file exists but was not loaded.
	// Every save is refused with it instead of overwriting the file.
	saveBlocked error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAllowEmptyClientName accepts clients whose name is empty.
func WithAllowEmptyClientName(allow bool) Option {
	return func(e *Engine) { e.allowEmptyClientName = allow }
}

// WithLowStockThreshold sets the stock at or below which products are low.
func WithLowStockThreshold(n int) Option {
	return func(e *Engine) { e.lowStockThreshold = n }
}

// New returns an engine over store. A nil persister keeps changes in memory only.
func New(store *model.Store, p Persister, opts ...Option) *Engine {
	if store == nil {
		store = model.NewStore(model.DefaultLimits())
	}
	e := &Engine{
		store:             store,
		persister:         p,
		logger:            zap.NewNop(),
		lowStockThreshold: model.DefaultLowStockThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the underlying store.
func (e *Engine) Store() *model.Store {
	return e.store
}

// Result is returned by successful mutations.
type Result struct {
	// Warning is set when the change could not be saved. The change is
	// still applied in memory.
	Warning error
}

// ClearAll removes every product, client and order, then saves the empty store.
func (e *Engine) ClearAll() Result {
	before := e.store.Counts()
	e.store.ClearAll()

	e.logger.Info("all records cleared",
		zap.Int("products", before.Products),
		zap.Int("clients", before.Clients),
		zap.Int("orders", before.Orders),
	)
	return Result{Warning: e.persist("clear")}
}

// persist saves the whole store. A failure is logged and returned so the
// caller can surface it as a warning.
func (e *Engine) persist(op string) error {
	if e.persister == nil {
		return nil
	}
	if e.saveBlocked != nil {
		e.logger.Warn("save refused, data file was not loaded", zap.String("op", op), zap.Error(e.saveBlocked))
		return e.saveBlocked
	}
	if err := e.persister.Save(e.store); err != nil {
		e.logger.Warn("save failed, change kept in memory only", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}

func zapLine(w model.ParseWarning) []zap.Field {
	return []zap.Field{
		zap.Int("line", w.Line),
		zap.String("section", string(w.Section)),
		zap.String("reason", w.Reason),
		zap.String("text", w.Text),
	}
}
