package editor

const statusMaxEntries = 40

// StatusEntry is a single line in the status log.
type StatusEntry struct {
	Seq     int
	Message string
	Warn    bool // no-path and rejected edits
}

// StatusLog is a ring buffer of editor status messages.
type StatusLog struct {
	entries []StatusEntry
	head    int
	count   int
	seq     int
}

// NewStatusLog creates a status log with a fixed capacity.
func NewStatusLog() *StatusLog {
	return &StatusLog{
		entries: make([]StatusEntry, statusMaxEntries),
	}
}

// Add appends an entry to the log.
func (sl *StatusLog) Add(msg string, warn bool) {
	sl.seq++
	sl.entries[sl.head] = StatusEntry{
		Seq:     sl.seq,
		Message: msg,
		Warn:    warn,
	}
	sl.head = (sl.head + 1) % statusMaxEntries
	if sl.count < statusMaxEntries {
		sl.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (sl *StatusLog) Recent() []StatusEntry {
	result := make([]StatusEntry, sl.count)
	for i := 0; i < sl.count; i++ {
		idx := (sl.head - sl.count + i + statusMaxEntries) % statusMaxEntries
		result[i] = sl.entries[idx]
	}
	return result
}

// Last returns the newest entry, or a zero entry if the log is empty.
func (sl *StatusLog) Last() StatusEntry {
	if sl.count == 0 {
		return StatusEntry{}
	}
	return sl.entries[(sl.head-1+statusMaxEntries)%statusMaxEntries]
}
