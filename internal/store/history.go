package store

import "sync"

// HistoryEntry is a single browsing-history record submitted by the
// extension. Clients send title and url plus whatever extra fields they
// like; everything round-trips unmodified.
type HistoryEntry map[string]any

// Title returns the entry's title field when present.
func (e HistoryEntry) Title() string {
	title, _ := e["title"].(string)
	return title
}

// URL returns the entry's url field when present.
func (e HistoryEntry) URL() string {
	url, _ := e["url"].(string)
	return url
}

// HistoryCache is the volatile, process-wide store of the most recently
// submitted history batch. Each submission replaces the previous batch
// wholesale; entries are never merged or appended.
type HistoryCache struct {
	mu      sync.RWMutex
	entries []HistoryEntry
}

func NewHistoryCache() *HistoryCache {
	return &HistoryCache{}
}

// Replace overwrites the stored batch and returns the number of entries
// stored. The swap happens under the lock, so readers see either the old
// batch or the new one, never a mix.
func (c *HistoryCache) Replace(entries []HistoryEntry) int {
	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return len(entries)
}

// Current returns the most recently stored batch, or an empty slice if
// nothing has been submitted yet.
func (c *HistoryCache) Current() []HistoryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entries == nil {
		return []HistoryEntry{}
	}
	return c.entries
}
