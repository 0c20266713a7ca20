// Package queue is the bounded, in-process hand-off between the monitor and the dispatcher.
package queue

import (
	"context"
	"errors"
	"time"
)

// Item signals that a document is ready for the pipeline. The consumer re-reads the document by name.
type Item struct {
	DocumentName string
}

// Idle reports whether the item is the filler returned when nothing arrived in time.
func (i Item) Idle() bool {
	return i.DocumentName == ""
}

type Queue struct {
	items chan Item
	grace time.Duration
}

func New(capacity int, grace time.Duration) *Queue {
	if capacity < 1 {
		capacity = 1
	}

	return &Queue{
		items: make(chan Item, capacity),
		grace: grace,
	}
}

// Enqueue blocks while the queue is full.
func (q *Queue) Enqueue(ctx context.Context, item Item) error {
	if item.Idle() {
		return errors.New("document name is required")
	}

	select {
	case q.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dequeue waits up to the grace interval for an item and returns an idle item if none arrives.
func (q *Queue) Dequeue(ctx context.Context) (Item, error) {
	timer := time.NewTimer(q.grace)
	defer timer.Stop()

	select {
	case item := <-q.items:
		return item, nil
	case <-timer.C:
		return Item{}, nil
	case <-ctx.Done():
		return Item{}, ctx.Err()
	}
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Cap() int {
	return cap(q.items)
}
