package results

import (
	"testing"

	"github.com/mwiater/evalscope/internal/notify"
)

func TestStoreLoadBytesRebuildsRecords(t *testing.T) {
	recorder := notify.NewRecorder()
	store := NewStore("in-memory", recorder)

	store.LoadBytes([]byte(scenarioDoc))
	if len(store.Records()) != 1 {
		t.Fatalf("expected 1 record, got %d", len(store.Records()))
	}

	// A reload replaces the set entirely.
	store.LoadBytes([]byte(`{"eval_results": []}`))
	if len(store.Records()) != 0 {
		t.Fatalf("reload must rebuild, got %d records", len(store.Records()))
	}
}

func TestStoreMalformedDocumentDegradesToEmptyWithNotice(t *testing.T) {
	recorder := notify.NewRecorder()
	store := NewStore("in-memory", recorder)

	store.LoadBytes([]byte(`{"eval_results": "nope"}`))
	if len(store.Records()) != 0 {
		t.Fatalf("malformed eval_results must yield an empty set")
	}
	if len(recorder.Notices) == 0 {
		t.Fatalf("expected a user-visible notice")
	}
	for _, n := range recorder.Notices {
		if n.Severity == notify.SeverityError {
			t.Errorf("malformed input is non-fatal, got error notice %+v", n)
		}
	}
}

func TestStoreNonJSONInputDoesNotPanic(t *testing.T) {
	recorder := notify.NewRecorder()
	store := NewStore("in-memory", recorder)

	store.LoadBytes([]byte(`garbage`))
	if len(store.Records()) != 0 {
		t.Fatalf("expected empty record set")
	}
	if len(recorder.Notices) == 0 {
		t.Fatalf("expected a notice for unreadable input")
	}
}

func TestStoreMissingFileYieldsNotice(t *testing.T) {
	recorder := notify.NewRecorder()
	store := NewStore("does/not/exist.json", recorder)

	store.Load()
	if len(store.Records()) != 0 {
		t.Fatalf("expected empty record set")
	}
	if len(recorder.Notices) != 1 || recorder.Notices[0].Severity != notify.SeverityWarning {
		t.Fatalf("expected a single warning notice, got %+v", recorder.Notices)
	}
}

func TestValidateDocumentAcceptsWellFormedInput(t *testing.T) {
	ok, violation := ValidateDocument([]byte(scenarioDoc))
	if !ok {
		t.Fatalf("scenario document should validate, got %q", violation)
	}

	ok, violation = ValidateDocument([]byte(`{"eval_results": 42}`))
	if ok || violation == "" {
		t.Fatalf("expected a violation for a non-array eval_results")
	}
}
