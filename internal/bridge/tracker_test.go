// ABOUTME: Tests for the Source correlation tracker.
// ABOUTME: Covers sequential id assignment, resolution, and unknown-id no-ops.

package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidemill/agent-bridge/internal/record"
)

func TestTrackerAssignsSequentialIds(t *testing.T) {
	tracker := NewTracker()

	a := record.New("a")
	b := record.New("b")
	c := record.New("c")

	assert.Equal(t, int64(1), tracker.Track(a), "ids start at 1")
	assert.Equal(t, int64(2), tracker.Track(b))
	assert.Equal(t, int64(3), tracker.Track(c))
	assert.Equal(t, 3, tracker.Len())
}

func TestTrackerResolveRemovesExactlyOneEntry(t *testing.T) {
	tracker := NewTracker()
	tracker.Track(record.New("a"))
	id := tracker.Track(record.New("b"))

	rec, ok := tracker.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, "b", rec.Value())
	assert.Equal(t, 1, tracker.Len())

	_, ok = tracker.Resolve(id)
	assert.False(t, ok, "resolving twice yields absent, not an error")
}

func TestTrackerResolveUnknownId(t *testing.T) {
	tracker := NewTracker()

	_, ok := tracker.Resolve(99)
	assert.False(t, ok)
	assert.Equal(t, 0, tracker.Len())
}

func TestTrackerIdsKeepIncreasingAfterResolve(t *testing.T) {
	tracker := NewTracker()

	id := tracker.Track(record.New("a"))
	tracker.Resolve(id)

	assert.Equal(t, int64(2), tracker.Track(record.New("b")),
		"resolved ids are never reused within a stream")
}

func TestTrackerRelease(t *testing.T) {
	tracker := NewTracker()
	tracker.Track(record.New("a"))
	tracker.Track(record.New("b"))

	tracker.Release()
	assert.Equal(t, 0, tracker.Len())
}
