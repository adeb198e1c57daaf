package workers

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher fans messages out to a fixed set of worker goroutines.
// Messages with the same partition key go to the same worker, in order.
type Dispatcher[T Partitionable] struct {
	Id string

	channels  []chan T
	wg        sync.WaitGroup
	closeOnce sync.Once
	logger    *zap.Logger
}

// NewDispatcher starts numWorkers workers, each with a queue of bufferSize
// messages. Workers stop when ctx is done or after Close drains their queue.
func NewDispatcher[T Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
	logger *zap.Logger,
) *Dispatcher[T] {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if bufferSize < 0 {
		bufferSize = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher[T]{
		Id:       uuid.New().String(),
		channels: make([]chan T, numWorkers),
		logger:   logger,
	}

	ready := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ch := make(chan T, bufferSize)
		d.channels[i] = ch
		d.wg.Add(1)
		ready.Add(1)
		go func(ch chan T) {
			defer d.wg.Done()
			ready.Done()
			for {
				select {
				case msg, ok := <-ch:
					if !ok {
						return
					}
					handleFn(ctx, msg)
				case <-ctx.Done():
					return
				}
			}
		}(ch)
	}
	ready.Wait()

	logger.Sugar().Debugf("created dispatcher: id: %v, workers: %d", d.Id, numWorkers)
	return d
}

// Dispatch queues msg for its worker. It returns false if ctx is done first
// or the dispatcher is closed.
func (d *Dispatcher[T]) Dispatch(ctx context.Context, msg T) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("dispatch after close", zap.String("id", d.Id), zap.String("key", msg.PartitionKey()))
			sent = false
		}
	}()

	select {
	case <-ctx.Done():
		return false
	case d.channels[getIndexByHash(msg, len(d.channels))] <- msg:
		return true
	}
}

// Close stops accepting messages and waits for the workers to finish the ones
// already queued.
func (d *Dispatcher[T]) Close() {
	d.closeOnce.Do(func() {
		for _, ch := range d.channels {
			close(ch)
		}
		d.wg.Wait()
		d.logger.Sugar().Debugf("closed dispatcher: id: %v", d.Id)
	})
}
