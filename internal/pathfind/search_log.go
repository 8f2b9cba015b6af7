package pathfind

import (
	"fmt"
	"sync"
)

// SearchLogEntry is one recorded search event.
type SearchLogEntry struct {
	Seq      int
	Category string  // reject, search, open
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value (cost, expansions)
}

// String formats the entry as a fixed-width log line.
//
//	[#0007] search   found            (0,0)->(2,2) len=5
func (e SearchLogEntry) String() string {
	return fmt.Sprintf("[#%04d] %-8s %-16s %s", e.Seq, e.Category, e.Key, e.Value)
}

// SearchLog collects structured events from searches on a grid. It is safe
// for concurrent use since several searches may share one grid.
type SearchLog struct {
	mu      sync.Mutex
	entries []SearchLogEntry
	verbose bool
}

// NewSearchLog creates a SearchLog. If verbose is true, per-pop events such
// as discarded stale entries are recorded too.
func NewSearchLog(verbose bool) *SearchLog {
	return &SearchLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SearchLog) Add(category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.mu.Lock()
	sl.entries = append(sl.entries, SearchLogEntry{
		Seq:      len(sl.entries) + 1,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
	sl.mu.Unlock()
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SearchLog) AddVerbose(category, key, value string, numVal float64) {
	if sl == nil || !sl.verbose {
		return
	}
	sl.Add(category, key, value, numVal)
}

// Entries returns a copy of all recorded entries.
func (sl *SearchLog) Entries() []SearchLogEntry {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	out := make([]SearchLogEntry, len(sl.entries))
	copy(out, sl.entries)
	return out
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SearchLog) Filter(category, key string) []SearchLogEntry {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	var out []SearchLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (sl *SearchLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// Reset drops all entries.
func (sl *SearchLog) Reset() {
	sl.mu.Lock()
	sl.entries = sl.entries[:0]
	sl.mu.Unlock()
}
