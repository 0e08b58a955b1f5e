// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/lockpattern"
)

func TestQueue_PollOrder(t *testing.T) {
	q := NewQueue()
	want := []lockpattern.Event{
		lockpattern.Down(1, 2),
		lockpattern.Move(3, 4),
		lockpattern.Up(5, 6),
	}
	for _, ev := range want {
		if err := q.Push(ev); err != nil {
			t.Fatalf("Push() = %v", err)
		}
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}

	got := q.Poll(nil)
	if len(got) != len(want) {
		t.Fatalf("Poll() returned %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Poll()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Poll = %d, want 0", q.Len())
	}
	if again := q.Poll(nil); len(again) != 0 {
		t.Errorf("second Poll() = %v, want empty", again)
	}
}

func TestQueue_Close(t *testing.T) {
	q := NewQueue()
	_ = q.Push(lockpattern.Down(0, 0))
	q.Close()

	if err := q.Push(lockpattern.Up(0, 0)); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Push() after Close = %v, want ErrQueueClosed", err)
	}
	if got := q.Poll(nil); len(got) != 1 {
		t.Errorf("Poll() after Close returned %d events, want 1", len(got))
	}
}

func TestQueue_ConcurrentPush(t *testing.T) {
	q := NewQueue()
	const producers, each = 8, 100

	var wg sync.WaitGroup
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range each {
				_ = q.Push(lockpattern.Move(1, 1))
			}
		}()
	}

	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	var buf []lockpattern.Event
	for {
		buf = q.Poll(buf[:0])
		total += len(buf)
		select {
		case <-done:
			total += len(q.Poll(nil))
			if total != producers*each {
				t.Errorf("polled %d events, want %d", total, producers*each)
			}
			return
		default:
		}
	}
}
