package orderedbuffer

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
)

var ErrClosedBuffer = errors.New("buffer is closed")

// SequenceFunc returns the position of a value in the output sequence.
type SequenceFunc[T any] func(T) int

// OrderedBuffer re-sequences values that arrive out of order. A value is
// released to Source only once every value before it has been released.
type OrderedBuffer[T any] struct {
	mu       sync.Mutex
	data     []T
	next     int
	sequence SequenceFunc[T]

	sink   chan T
	closed atomic.Bool
}

// NewOrderedBuffer returns a buffer whose first released value has sequence first.
func NewOrderedBuffer[T any](first, sinkSize int, seq SequenceFunc[T]) *OrderedBuffer[T] {
	return &OrderedBuffer[T]{
		next:     first,
		sequence: seq,
		sink:     make(chan T, sinkSize),
	}
}

// Insert adds val and releases the run of values that became contiguous.
// It may block until Source is read.
func (b *OrderedBuffer[T]) Insert(ctx context.Context, val T) error {
	if b.closed.Load() {
		return ErrClosedBuffer
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed.Load() {
		return ErrClosedBuffer
	}

	// binary search, then insert
	seq := b.sequence(val)
	idx := sort.Search(len(b.data), func(i int) bool {
		return seq < b.sequence(b.data[i])
	})
	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	for len(b.data) > 0 && b.sequence(b.data[0]) == b.next {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b.sink <- b.data[0]:
		}
		b.data = b.data[1:]
		b.next++
	}
	return nil
}

func (b *OrderedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Close flushes whatever is still held, gaps included, and closes Source.
func (b *OrderedBuffer[T]) Close(ctx context.Context) {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	defer close(b.sink)
	for _, v := range b.data {
		select {
		case <-ctx.Done():
			return
		case b.sink <- v:
		}
	}
	b.data = nil
}
