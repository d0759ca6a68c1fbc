// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Queue is a FIFO event queue that is safe for concurrent use.
// Non-unique events (moves, drags and scrolls) are compressed with
// the last queued event of the same type and button, so that a slow
// consumer sees one integrated event instead of a laggy backlog.
// The zero value is ready to use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Send adds an event to the end of the queue, compressing it with
// the last event when possible.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > 0 && !ev.Type().IsUnique() {
		if compress(q.events[n-1], ev) {
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Drain removes and returns all queued events in order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.events
	q.events = nil
	return evs
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// compress merges ev into last if they are compatible,
// returning true if it did so.
func compress(last, ev Event) bool {
	if last.Type() != ev.Type() || last.MouseButton() != ev.MouseButton() || last.Modifiers() != ev.Modifiers() {
		return false
	}
	switch le := last.(type) {
	case *MouseScroll:
		se := ev.(*MouseScroll)
		le.Delta = le.Delta.Add(se.Delta)
		le.Where = se.Where
		return true
	case *Mouse:
		me := ev.(*Mouse)
		// keep the earliest Prev so PrevDelta spans the whole motion
		le.Where = me.Where
		le.GenTime = me.GenTime
		return true
	}
	return false
}
