package main

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/partitions/internal/config"
	"github.com/on-the-ground/partitions/internal/workers"
	"github.com/on-the-ground/partitions/partition"
	"github.com/on-the-ground/partitions/shared/orderedbuffer"
)

// job asks a worker for the partitions of one total.
type job int

func (j job) PartitionKey() string {
	return strconv.Itoa(int(j))
}

type result struct {
	Total uint
	Set   partition.Set
	Span  timespan.TimeSpan
}

// run computes the partitions of every total in the configured range on a pool
// of workers sharing holder, and prints them in ascending order of total.
func run(
	ctx context.Context,
	w io.Writer,
	cfg config.Config,
	holder *partition.Holder,
	logger *zap.Logger,
) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	buf := orderedbuffer.NewOrderedBuffer(cfg.From, cfg.BufferSize, func(r result) int {
		return int(r.Total)
	})

	dispatcher := workers.NewDispatcher(ctx, cfg.Workers, cfg.BufferSize, func(ctx context.Context, j job) {
		start := time.Now()
		set, err := holder.GetPartitionsInt(int(j))
		if err != nil {
			logger.Error("rejected total", zap.Int("total", int(j)), zap.Error(err))
			return
		}
		r := result{Total: uint(j), Set: set, Span: timespan.BetweenTimes(start, time.Now())}
		logger.Debug("computed partitions",
			zap.Uint("total", r.Total),
			zap.Int("count", len(r.Set)),
			zap.Duration("took", r.Span.Duration()),
		)
		if err := buf.Insert(ctx, r); err != nil {
			logger.Warn("dropped result", zap.Uint("total", r.Total), zap.Error(err))
		}
	}, logger)

	go func() {
		for total := cfg.From; total <= cfg.To; total++ {
			if !dispatcher.Dispatch(ctx, job(total)) {
				break
			}
		}
		dispatcher.Close()
		buf.Close(ctx)
	}()

	var err error
	for r := range buf.Source() {
		if err != nil {
			continue
		}
		if err = renderSet(w, r.Total, r.Set); err != nil {
			cancel()
		}
	}
	if err == nil {
		// the parent context ended before every total was printed
		err = ctx.Err()
	}

	stats := holder.Stats()
	logger.Info("done",
		zap.Int("keys", stats.Keys),
		zap.Uint64("hits", stats.Hits),
		zap.Uint64("misses", stats.Misses),
	)
	return err
}
