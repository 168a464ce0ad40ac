// ABOUTME: Correlation tracking for records emitted on a Source read stream.
// ABOUTME: Maps sequential record ids to in-flight records until the peer resolves them.

package bridge

import (
	"sync"

	"github.com/tidemill/agent-bridge/internal/record"
)

// Tracker assigns per-stream correlation ids to emitted records and retains
// each record until the peer commits or permanently fails it. Ids are
// positive and strictly increasing, starting at 1, scoped to one read
// stream. The emit loop and the ack loop touch it concurrently.
type Tracker struct {
	mu      sync.Mutex
	pending map[int64]record.Record
	lastID  int64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{pending: make(map[int64]record.Record)}
}

// Track assigns the next correlation id to rec and retains it as in-flight.
func (t *Tracker) Track(rec record.Record) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	t.pending[t.lastID] = rec
	return t.lastID
}

// Resolve removes and returns the record tracked under id. The second
// return value is false when the id is unknown: already resolved or never
// issued. Resolving an unknown id is never an error.
func (t *Tracker) Resolve(id int64) (record.Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.pending[id]
	if ok {
		delete(t.pending, id)
	}
	return rec, ok
}

// Len reports the number of in-flight records.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Release drops every in-flight record. Called when the stream closes.
func (t *Tracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = make(map[int64]record.Record)
}
