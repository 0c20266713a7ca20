package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kurochkinivan/doc_intelligence/internal/domain"
	"github.com/kurochkinivan/doc_intelligence/internal/queue"
	"golang.org/x/sync/errgroup"
)

// Dispatcher takes queued documents off the work queue and runs them through the processor.
//
// With a single worker it also waits while any document is processing in the store, so at most one
// document is analyzed at a time across processes sharing the store.
type Dispatcher struct {
	log          *slog.Logger
	workers      int
	pollInterval time.Duration
	finder       DocumentFinder
	source       WorkSource
	processor    DocumentProcessor
	results      chan<- *domain.AnalysisResult
}

// NewDispatcher creates a dispatcher. results may be nil when nobody consumes finished analyses.
func NewDispatcher(
	log *slog.Logger,
	workers int,
	pollInterval time.Duration,
	finder DocumentFinder,
	source WorkSource,
	processor DocumentProcessor,
	results chan<- *domain.AnalysisResult,
) *Dispatcher {
	return &Dispatcher{
		log:          log,
		workers:      max(workers, 1),
		pollInterval: pollInterval,
		finder:       finder,
		source:       source,
		processor:    processor,
		results:      results,
	}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	if d.results != nil {
		defer close(d.results)
	}

	erg, ctx := errgroup.WithContext(ctx)

	for id := range d.workers {
		erg.Go(func() error {
			return d.work(ctx, d.log.With(slog.Int("worker", id)))
		})
	}

	return erg.Wait()
}

func (d *Dispatcher) work(ctx context.Context, log *slog.Logger) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.workers == 1 {
			busy, err := d.storeBusy(ctx)
			if err != nil && ctx.Err() == nil {
				log.ErrorContext(ctx, "failed to check processing documents", slog.String("err", err.Error()))
			}

			if busy || err != nil {
				if err := sleep(ctx, d.pollInterval); err != nil {
					return err
				}
				continue
			}
		}

		item, err := d.source.Dequeue(ctx)
		if err != nil {
			return err
		}

		if item.Idle() {
			continue
		}

		d.dispatch(ctx, log, item)
	}
}

// dispatch runs the item until it either reaches the processor or turns out to be stale. Store errors
// that leave the document queued are retried every pollInterval, the item is never dropped.
func (d *Dispatcher) dispatch(ctx context.Context, log *slog.Logger, item queue.Item) {
	log = log.With(slog.String("document", item.DocumentName))

	for !d.process(ctx, log, item) {
		log.WarnContext(ctx, "document stays queued, retrying", slog.Duration("delay", d.pollInterval))

		if err := sleep(ctx, d.pollInterval); err != nil {
			return
		}
	}
}

// process reports false when the document is still queued and must be retried.
func (d *Dispatcher) process(ctx context.Context, log *slog.Logger, item queue.Item) bool {
	doc, err := d.finder.DocumentByName(ctx, item.DocumentName)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		log.WarnContext(ctx, "queued document no longer exists, skipping")
		return true
	case err != nil:
		log.ErrorContext(ctx, "failed to load queued document", slog.String("err", err.Error()))
		return false
	}

	if doc.Status != domain.StatusQueued {
		log.WarnContext(ctx, "document is not queued, skipping", slog.String("status", string(doc.Status)))
		return true
	}

	log.InfoContext(ctx, "processing document")

	result, err := d.processor.Run(ctx, doc)
	switch {
	case errors.Is(err, domain.ErrDocumentClaimed):
		log.WarnContext(ctx, "document claimed by another worker, skipping")
		return true
	case errors.Is(err, domain.ErrClaimFailed):
		log.ErrorContext(ctx, "failed to claim document", slog.String("err", err.Error()))
		return false
	case err != nil:
		log.ErrorContext(ctx, "document processing failed", slog.String("err", err.Error()))
		return true
	}

	log.InfoContext(ctx, "document processed",
		slog.Int("benefits", len(result.Benefits)),
		slog.Int("test_cases", result.TestCases.Len()),
	)

	if d.results == nil {
		return true
	}

	select {
	case d.results <- result:
	case <-ctx.Done():
	}

	return true
}

func (d *Dispatcher) storeBusy(ctx context.Context) (bool, error) {
	_, err := d.finder.OldestDocumentByStatus(ctx, domain.StatusProcessing)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
