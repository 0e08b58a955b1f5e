// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"sync"

	"github.com/gogpu/lockpattern"
)

// ErrQueueClosed is returned by Push after Close.
var ErrQueueClosed = errors.New("host: queue is closed")

// Source supplies the input events for one tick.
type Source interface {
	// Poll appends the events for the current tick to dst and returns it.
	Poll(dst []lockpattern.Event) []lockpattern.Event
}

// Queue is an unbounded FIFO of events, safe for concurrent use.
// Producers Push from any goroutine; the loop drains it once per tick.
type Queue struct {
	mu     sync.Mutex
	events []lockpattern.Event
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev to the queue.
func (q *Queue) Push(ev lockpattern.Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	q.events = append(q.events, ev)
	return nil
}

// Poll moves all pending events to dst in arrival order.
func (q *Queue) Poll(dst []lockpattern.Event) []lockpattern.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	dst = append(dst, q.events...)
	clear(q.events)
	q.events = q.events[:0]
	return dst
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Close rejects further pushes. Pending events can still be polled.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
