package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/doc_intelligence/internal/domain"
	"github.com/kurochkinivan/doc_intelligence/internal/queue"
)

// Monitor promotes uploaded documents to the work queue once they are old enough.
type Monitor struct {
	log                  *slog.Logger
	pollInterval         time.Duration
	dwellTime            time.Duration
	maxConsecutiveErrors int
	finder               DocumentFinder
	transitioner         StatusTransitioner
	queue                WorkQueue
}

func NewMonitor(
	log *slog.Logger,
	pollInterval time.Duration,
	dwellTime time.Duration,
	maxConsecutiveErrors int,
	finder DocumentFinder,
	transitioner StatusTransitioner,
	queue WorkQueue,
) *Monitor {
	return &Monitor{
		log:                  log,
		pollInterval:         pollInterval,
		dwellTime:            dwellTime,
		maxConsecutiveErrors: maxConsecutiveErrors,
		finder:               finder,
		transitioner:         transitioner,
		queue:                queue,
	}
}

// Run polls the store until ctx is done. It gives up after maxConsecutiveErrors failed polls in a row;
// zero means it never gives up.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.requeue(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.log.ErrorContext(ctx, "failed to requeue documents", slog.String("err", err.Error()))
	}

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	var failures int

	for {
		select {
		case <-ticker.C:
			err := m.promote(ctx)
			if err == nil {
				failures = 0
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			failures++
			m.log.ErrorContext(ctx, "failed to promote documents",
				slog.Int("consecutive_failures", failures),
				slog.String("err", err.Error()),
			)

			if m.maxConsecutiveErrors > 0 && failures >= m.maxConsecutiveErrors {
				return fmt.Errorf("monitor stopped after %d consecutive failures: %w", failures, err)
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// promote queues not started documents oldest first and stops at the first one that is too young.
func (m *Monitor) promote(ctx context.Context) error {
	for {
		doc, err := m.finder.OldestDocumentByStatus(ctx, domain.StatusNotStarted)
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find oldest document: %w", err)
		}

		if age := doc.Age(time.Now()); age < m.dwellTime {
			m.log.DebugContext(ctx, "oldest document is too young, waiting",
				slog.String("document", doc.Name),
				slog.Duration("age", age),
			)
			return nil
		}

		ok, err := m.transitioner.TransitionStatus(ctx, doc.Name, domain.StatusNotStarted, domain.StatusQueued)
		if err != nil {
			return fmt.Errorf("failed to queue document %q: %w", doc.Name, err)
		}

		if !ok {
			m.log.WarnContext(ctx, "document status changed concurrently, skipping", slog.String("document", doc.Name))
			continue
		}

		if err := m.queue.Enqueue(ctx, queue.Item{DocumentName: doc.Name}); err != nil {
			return fmt.Errorf("failed to enqueue document %q: %w", doc.Name, err)
		}

		m.log.InfoContext(ctx, "document queued", slog.String("document", doc.Name))
	}
}

// requeue puts documents that were queued before a restart back into the in-memory queue.
func (m *Monitor) requeue(ctx context.Context) error {
	docs, err := m.finder.DocumentsByStatus(ctx, domain.StatusQueued)
	if err != nil {
		return fmt.Errorf("failed to find queued documents: %w", err)
	}

	for _, doc := range docs {
		if err := m.queue.Enqueue(ctx, queue.Item{DocumentName: doc.Name}); err != nil {
			return fmt.Errorf("failed to enqueue document %q: %w", doc.Name, err)
		}
	}

	if len(docs) > 0 {
		m.log.InfoContext(ctx, "requeued documents", slog.Int("count", len(docs)))
	}

	return nil
}
