package game

// DefaultLogLimit is how many messages the event log keeps.
const DefaultLogLimit = 50

// EventLog is a bounded history of player-facing messages, newest first.
type EventLog struct {
	entries []string
	limit   int
}

// NewEventLog creates a log holding at most limit entries.
// A non-positive limit uses DefaultLogLimit.
func NewEventLog(limit int) *EventLog {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return &EventLog{limit: limit}
}

// Add records a message, dropping the oldest entry when full.
func (l *EventLog) Add(msg string) {
	l.entries = append([]string{msg}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
}

// Entries returns a copy of the log, newest first.
func (l *EventLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}
