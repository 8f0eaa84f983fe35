package livefeed

import (
	"sort"
	"sync"

	"biteengine/internal/dto"
)

// Feed is the bounded in-memory projection of the activity log that live
// subscribers see. Incoming entries are merged by timestamp and deduplicated
// by ID rather than blindly prepended, so a redelivered or reordered
// notification cannot corrupt the feed order.
type Feed struct {
	mu      sync.RWMutex
	limit   int
	entries []dto.ActivityResponse
}

func NewFeed(limit int) *Feed {
	return &Feed{limit: limit}
}

// Add merges one entry into the feed, keeping newest-first order and the
// length bound. Entries already present (by ID) are ignored.
func (f *Feed) Add(entry dto.ActivityResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.entries {
		if existing.ID == entry.ID {
			return
		}
	}

	f.entries = append(f.entries, entry)
	sort.SliceStable(f.entries, func(i, j int) bool {
		return f.entries[i].Timestamp.After(f.entries[j].Timestamp)
	})

	if len(f.entries) > f.limit {
		f.entries = f.entries[:f.limit]
	}
}

// Replace swaps in an authoritative snapshot from the store
func (f *Feed) Replace(entries []dto.ActivityResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = make([]dto.ActivityResponse, len(entries))
	copy(f.entries, entries)
	if len(f.entries) > f.limit {
		f.entries = f.entries[:f.limit]
	}
}

// Entries returns the current feed, newest first
func (f *Feed) Entries() []dto.ActivityResponse {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries := make([]dto.ActivityResponse, len(f.entries))
	copy(entries, f.entries)
	return entries
}
