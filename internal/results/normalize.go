package results

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawDocument is the parsed evaluation-results document. Run entries keep
// the order they appear in on disk; benchmark records are emitted in that
// order with no implicit sorting.
type RawDocument struct {
	Entries []RunEntry
}

// RunEntry maps run keys to their task results, in document order.
type RunEntry struct {
	Runs []Run
}

// Run is one run key with its ordered task results.
type Run struct {
	Key   string
	Tasks []TaskResult
}

// TaskResult pairs a task name with its (possibly absent) detail object.
type TaskResult struct {
	Name   string
	Detail *TaskDetail
}

// ParseDocument decodes the raw document. A missing or malformed
// eval_results field degrades to an empty document; only input that is not
// JSON at all is reported as an error, and even that is recovered by the
// store into an empty record set.
func ParseDocument(raw []byte) (*RawDocument, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return &RawDocument{}, fmt.Errorf("document is not a JSON object: %w", err)
	}

	entriesRaw, ok := top["eval_results"]
	if !ok {
		return &RawDocument{}, nil
	}

	var entryList []json.RawMessage
	if err := json.Unmarshal(entriesRaw, &entryList); err != nil {
		return &RawDocument{}, nil
	}

	doc := &RawDocument{}
	for _, entryRaw := range entryList {
		entry := RunEntry{}
		err := walkOrderedObject(entryRaw, func(runKey string, tasksRaw json.RawMessage) {
			run := Run{Key: runKey}
			_ = walkOrderedObject(tasksRaw, func(taskName string, detailRaw json.RawMessage) {
				run.Tasks = append(run.Tasks, TaskResult{
					Name:   taskName,
					Detail: parseTaskDetail(detailRaw),
				})
			})
			entry.Runs = append(entry.Runs, run)
		})
		if err != nil {
			continue
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}

// walkOrderedObject visits an object's keys in document order. Go maps do
// not preserve key order, so the decode runs at token level.
func walkOrderedObject(raw json.RawMessage, visit func(key string, value json.RawMessage)) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		visit(key, value)
	}
	_, err = dec.Token()
	return err
}

// Normalize flattens the document into benchmark records. The transform is
// pure and deterministic; an empty result is a caller-visible state, not an
// error.
func Normalize(doc *RawDocument) []BenchmarkRecord {
	if doc == nil {
		return nil
	}
	var records []BenchmarkRecord
	for _, entry := range doc.Entries {
		for _, run := range entry.Runs {
			for _, task := range run.Tasks {
				if task.Detail == nil {
					continue
				}
				records = append(records, buildRecord(run.Key, task.Name, task.Detail))
			}
		}
	}
	return records
}

// Counts are never negative, whatever the source claims.
func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// buildRecord resolves every dimension through the fixed fallback chain:
// explicit field, then run-key decomposition, then path decomposition. The
// sentinel label is applied at display time, not here.
func buildRecord(runKey, taskName string, detail *TaskDetail) BenchmarkRecord {
	parts := DecomposeRunKey(runKey)
	modelPath := detail.String("model")
	valJSON := detail.String("val_json")

	family := parts.Family
	if family == nil {
		family = ModelNameFromPath(modelPath)
	}
	task := parts.Task
	if task == nil {
		task = TaskFromValJSONPath(valJSON)
	}

	mode := detail.String("mode")
	if mode == "" {
		mode = ModeUnknown
	}

	return BenchmarkRecord{
		ID:                    runKey + "__" + taskName,
		ModelPath:             modelPath,
		ModelName:             runKey,
		ModelFamily:           family,
		Task:                  task,
		Technique:             TechniqueFromModelPath(modelPath),
		BenchmarkName:         taskName,
		CreatedAt:             detail.StringPtr("created_at"),
		Total:                 nonNegative(detail.Int("total")),
		Correct:               nonNegative(detail.Int("correct")),
		AccuracyPercent:       detail.Float("accuracy_percent"),
		ByAnswerType:          detail.Raw("by_answer_type"),
		Mode:                  mode,
		GeneratedMaxNewTokens: detail.IntPtr("generated_max_new_tokens"),
		StopOnAnswer:          detail.BoolPtr("stop_on_answer"),
		RuntimeSeconds:        detail.FloatPtr("runtime_seconds"),
		AvgSecondsPerExample:  detail.FloatPtr("avg_seconds_per_example"),
		OutDir:                detail.StringPtr("out_dir"),
		ValJSON:               detail.StringPtr("val_json"),
	}
}
