package livefeed

import (
	"fmt"
	"testing"
	"time"

	"biteengine/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(id string, ts time.Time) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:         id,
		User:       "Alice",
		Action:     "voted for",
		Restaurant: "스시텐",
		Timestamp:  ts,
	}
}

func TestFeedBound(t *testing.T) {
	feed := NewFeed(10)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		feed.Add(entryAt(fmt.Sprintf("e%02d", i), base.Add(time.Duration(i)*time.Second)))
	}

	entries := feed.Entries()
	require.Len(t, entries, 10)

	// Newest first, oldest five evicted
	assert.Equal(t, "e14", entries[0].ID)
	assert.Equal(t, "e05", entries[9].ID)
}

func TestFeedNewestFirst(t *testing.T) {
	feed := NewFeed(10)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	feed.Add(entryAt("old", base))
	feed.Add(entryAt("new", base.Add(time.Minute)))

	entries := feed.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].ID)
	assert.Equal(t, "old", entries[1].ID)
}

// A late-arriving older entry slots into timestamp position instead of
// landing on top.
func TestFeedMergesOutOfOrderDelivery(t *testing.T) {
	feed := NewFeed(10)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	feed.Add(entryAt("first", base))
	feed.Add(entryAt("third", base.Add(2*time.Minute)))
	feed.Add(entryAt("second", base.Add(time.Minute)))

	entries := feed.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].ID)
	assert.Equal(t, "second", entries[1].ID)
	assert.Equal(t, "first", entries[2].ID)
}

// Redelivery of the same entry must not duplicate it
func TestFeedIgnoresDuplicateIDs(t *testing.T) {
	feed := NewFeed(10)
	ts := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	feed.Add(entryAt("e1", ts))
	feed.Add(entryAt("e1", ts))
	feed.Add(entryAt("e1", ts.Add(time.Minute)))

	assert.Len(t, feed.Entries(), 1)
}

func TestFeedReplace(t *testing.T) {
	feed := NewFeed(2)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	feed.Add(entryAt("stale", base))

	snapshot := []dto.ActivityResponse{
		entryAt("s1", base.Add(3*time.Minute)),
		entryAt("s2", base.Add(2*time.Minute)),
		entryAt("s3", base.Add(time.Minute)),
	}
	feed.Replace(snapshot)

	entries := feed.Entries()
	require.Len(t, entries, 2, "snapshot is clamped to the limit")
	assert.Equal(t, "s1", entries[0].ID)
	assert.Equal(t, "s2", entries[1].ID)
}

func TestFeedEntriesReturnsCopy(t *testing.T) {
	feed := NewFeed(10)
	feed.Add(entryAt("e1", time.Now()))

	entries := feed.Entries()
	entries[0].ID = "mutated"

	assert.Equal(t, "e1", feed.Entries()[0].ID)
}
