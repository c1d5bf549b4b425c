package driver

import (
	"sync"
	"time"

	"github.com/browserhub/browserhub/internal/clock"
	"github.com/charmbracelet/log"
)

// LogFailures returns a listener that logs registration failures through the
// supplied logger. A nil logger falls back to the package default.
func LogFailures(logger *log.Logger) FailureListener {
	if logger == nil {
		logger = log.Default()
	}
	return func(descriptor, reason string) {
		logger.Warn("driver registration failed", "descriptor", descriptor, "reason", reason)
	}
}

// Failure records one registration failure for later inspection.
type Failure struct {
	Descriptor string    `json:"descriptor"`
	Reason     string    `json:"reason"`
	At         time.Time `json:"at"`
}

// FailureLog retains the most recent registration failures, giving an
// administrative surface something to poll. It is safe for concurrent use.
type FailureLog struct {
	mux     sync.Mutex
	limit   int
	entries []Failure
}

// NewFailureLog creates a failure log keeping at most limit entries; older
// entries are discarded first. A non-positive limit keeps everything.
func NewFailureLog(limit int) *FailureLog {
	return &FailureLog{limit: limit}
}

// Listener returns the FailureListener feeding this log.
func (l *FailureLog) Listener() FailureListener {
	return func(descriptor, reason string) {
		l.mux.Lock()
		defer l.mux.Unlock()
		l.entries = append(l.entries, Failure{
			Descriptor: descriptor,
			Reason:     reason,
			At:         clock.Now(),
		})
		if l.limit > 0 && len(l.entries) > l.limit {
			l.entries = l.entries[len(l.entries)-l.limit:]
		}
	}
}

// Failures returns a snapshot of the retained failures, oldest first.
func (l *FailureLog) Failures() []Failure {
	l.mux.Lock()
	defer l.mux.Unlock()
	out := make([]Failure, len(l.entries))
	copy(out, l.entries)
	return out
}
