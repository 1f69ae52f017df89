package results

import (
	"os"

	"github.com/mwiater/evalscope/internal/logging"
	"github.com/mwiater/evalscope/internal/notify"
)

// Store owns the session's normalized record set. The document is read once
// per load, the full set is rebuilt, and records are read-only afterwards;
// the filter, aggregation, and pager components take the store by reference
// instead of sharing process globals.
type Store struct {
	path     string
	notifier notify.Notifier
	records  []BenchmarkRecord
}

// NewStore creates a store bound to a document path and a notifier for
// user-visible signals.
func NewStore(path string, notifier notify.Notifier) *Store {
	return &Store{path: path, notifier: notifier}
}

// Load reads the document with a single blocking read and rebuilds the
// record set. Every failure path terminates in an empty record set plus a
// non-fatal notice; Load never returns an error to its caller.
func (s *Store) Load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.records = nil
		s.notifier.Notify("Results unavailable",
			"could not read "+s.path+": "+err.Error(), notify.SeverityWarning)
		return
	}
	s.LoadBytes(raw)
}

// LoadBytes rebuilds the record set from in-memory document bytes.
func (s *Store) LoadBytes(raw []byte) {
	if ok, violation := ValidateDocument(raw); !ok {
		s.notifier.Notify("Results document looks malformed", violation, notify.SeverityWarning)
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		s.records = nil
		s.notifier.Notify("Results unavailable", err.Error(), notify.SeverityWarning)
		return
	}

	s.records = Normalize(doc)
	logging.LogEvent("[RESULTS] Normalized %d benchmark records from %s", len(s.records), s.path)
	if len(s.records) == 0 {
		s.notifier.Notify("No benchmark records",
			"the document contains no usable eval_results entries", notify.SeverityWarning)
	}
}

// Records returns the current record set. Callers must treat it as
// read-only; derived views copy what they reorder.
func (s *Store) Records() []BenchmarkRecord {
	return s.records
}
