// Package poll keeps the cached fixture views warm. The public pages
// refresh on an interval rather than on demand, so the poller re-reads
// every category's matches through the cached repositories and lets
// the cache absorb the result.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/renca-fc/league-console/internal/domain/category"
	"github.com/renca-fc/league-console/internal/domain/club"
	"github.com/renca-fc/league-console/internal/domain/match"
)

const (
	defaultInterval    = 10 * time.Second
	defaultWorkerCount = 4
)

type Config struct {
	Interval time.Duration
	Workers  int
}

// Runner periodically fans out one fixture read per category. Adult
// categories are refreshed once per series.
type Runner struct {
	categoryRepo category.Repository
	matchRepo    match.Repository
	interval     time.Duration
	workers      int
	logger       *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(categoryRepo category.Repository, matchRepo match.Repository, cfg Config, logger *slog.Logger) *Runner {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		categoryRepo: categoryRepo,
		matchRepo:    matchRepo,
		interval:     interval,
		workers:      workers,
		logger:       logger,
	}
}

// Start launches the refresh loop. It returns immediately; the loop
// runs until Stop is called or ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.refreshAll(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight cycle to finish.
func (r *Runner) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

func (r *Runner) refreshAll(ctx context.Context) {
	categories, err := r.categoryRepo.List(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "fixture refresh skipped: list categories failed", "error", err)
		return
	}

	type task struct {
		categoryID int64
		series     string
	}
	tasks := make([]task, 0, len(categories)+len(categories))
	for _, cat := range categories {
		if cat.IsAdult() {
			tasks = append(tasks,
				task{categoryID: cat.ID, series: club.SeriesHonor},
				task{categoryID: cat.ID, series: club.SeriesAscenso},
			)
			continue
		}
		tasks = append(tasks, task{categoryID: cat.ID})
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		r.logger.WarnContext(ctx, "fixture refresh skipped: create worker pool failed", "error", err)
		return
	}
	defer pool.Release()

	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, item := range tasks {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if _, err := r.matchRepo.ListByCategory(ctx, item.categoryID, item.series); err != nil {
				failed.Add(1)
				if ctx.Err() == nil {
					r.logger.WarnContext(ctx, "fixture refresh failed",
						"category_id", item.categoryID,
						"series", item.series,
						"error", err,
					)
				}
			}
		}); err != nil {
			workers.Done()
			r.logger.WarnContext(ctx, "submit fixture refresh task failed", "error", err)
		}
	}
	workers.Wait()

	if n := failed.Load(); n > 0 {
		r.logger.WarnContext(ctx, "fixture refresh cycle finished with failures", "failed", n, "total", len(tasks))
	}
}
