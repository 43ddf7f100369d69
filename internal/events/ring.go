// Package events is the bounded in-memory analytics event log. It belongs
// to the transport layer; the scoring core never reads or writes it.
package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one recorded analytics event.
type Event struct {
	ID        string         `json:"id"`
	SessionID string         `json:"sessionId"`
	EventType string         `json:"eventType"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp float64        `json:"timestamp"`
	UserAgent string         `json:"userAgent,omitempty"`
	RemoteIP  string         `json:"ip,omitempty"`
}

// NewEventID returns a unique event identifier.
func NewEventID() string {
	return fmt.Sprintf("event_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Ring is a fixed-capacity event buffer. Once full, the oldest events are
// overwritten. Safe for concurrent use.
type Ring struct {
	mu   sync.Mutex
	buf  []Event
	next int
	full bool
}

// NewRing creates a ring holding at most capacity events.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]Event, capacity)}
}

// Append records an event, evicting the oldest one when at capacity.
func (r *Ring) Append(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = e
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// Len returns the number of stored events.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.buf)
	}
	return r.next
}

// Snapshot returns the stored events in chronological order.
func (r *Ring) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		out := make([]Event, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]Event, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	out = append(out, r.buf[:r.next]...)
	return out
}

// Query returns up to limit most recent events, optionally filtered by
// session ID. A non-positive limit means no limit.
func (r *Ring) Query(sessionID string, limit int) []Event {
	events := r.Snapshot()
	if sessionID != "" {
		filtered := events[:0]
		for _, e := range events {
			if e.SessionID == sessionID {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return events
}

// Stats summarizes a slice of events for reporting.
type Stats struct {
	TotalEvents int      `json:"totalEvents"`
	EventTypes  []string `json:"eventTypes"`
	TimeRange   *Range   `json:"timeRange"`
}

// Range is the inclusive timestamp span of a set of events.
type Range struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Summarize computes basic statistics over events.
func Summarize(events []Event) Stats {
	stats := Stats{TotalEvents: len(events)}
	if len(events) == 0 {
		return stats
	}

	seen := make(map[string]bool)
	r := Range{Start: events[0].Timestamp, End: events[0].Timestamp}
	for _, e := range events {
		if !seen[e.EventType] {
			seen[e.EventType] = true
			stats.EventTypes = append(stats.EventTypes, e.EventType)
		}
		if e.Timestamp < r.Start {
			r.Start = e.Timestamp
		}
		if e.Timestamp > r.End {
			r.End = e.Timestamp
		}
	}
	stats.TimeRange = &r
	return stats
}
