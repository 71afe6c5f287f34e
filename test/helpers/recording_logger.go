package helpers

import "sync"

// LogEntry is one call captured by RecordingLogger
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// RecordingLogger captures ContainerLogger calls for assertions
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Log records an entry
func (r *RecordingLogger) Log(level, message string, metadata map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Entries returns a copy of the recorded entries
func (r *RecordingLogger) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogEntry(nil), r.entries...)
}

// Find returns the first entry with the given message
func (r *RecordingLogger) Find(message string) (LogEntry, bool) {
	for _, e := range r.Entries() {
		if e.Message == message {
			return e, true
		}
	}
	return LogEntry{}, false
}
