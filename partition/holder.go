package partition

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Holder owns one Engine and serializes all access to it.
// The Engine is created on first use.
//
// If a function run by Do panics, the Engine it was given may be half way
// through a mutation. The holder drops it, so the next caller starts from an
// empty store, and panics with an error wrapping ErrStoreDiscarded.
type Holder struct {
	mu     sync.Mutex
	engine *Engine
	logger *zap.Logger
}

type Option func(*Holder)

// WithLogger sets the logger used for store lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Holder) {
		if logger != nil {
			h.logger = logger
		}
	}
}

func NewHolder(opts ...Option) *Holder {
	h := &Holder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Do runs fn with exclusive access to the engine.
func (h *Holder) Do(fn func(*Engine)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.engine == nil {
		h.engine = NewEngine()
		h.logger.Debug("created partition store")
	}

	defer func() {
		if r := recover(); r != nil {
			h.engine = nil
			h.logger.Error("discarded partition store", zap.Any("panic", r))
			if cause, ok := r.(error); ok {
				panic(fmt.Errorf("%w: %w", ErrStoreDiscarded, cause))
			}
			panic(fmt.Errorf("%w: %v", ErrStoreDiscarded, r))
		}
	}()

	fn(h.engine)
}

// GetPartitions returns every partition of total.
func (h *Holder) GetPartitions(total uint) Set {
	var res Set
	h.Do(func(e *Engine) {
		before := e.Stats().Keys
		res = e.Partitions(total)
		if after := e.Stats().Keys; after > before {
			h.logger.Sugar().Debugf("memoized %d new keys for total %d, %d keys in store", after-before, total, after)
		}
	})
	return res
}

// GetPartitionsInt is GetPartitions for a signed total.
// Negative totals are rejected with ErrNegativeTotal.
func (h *Holder) GetPartitionsInt(total int) (Set, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTotal, total)
	}
	return h.GetPartitions(uint(total)), nil
}

// Stats reports the memo of the current store. It is zero before the first
// call and after a store was discarded.
func (h *Holder) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.engine == nil {
		return Stats{}
	}
	return h.engine.Stats()
}
