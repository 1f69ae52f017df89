// Package results owns the evaluation-results data model: the raw document
// produced by offline benchmarking runs, the heuristics that recover model
// and task dimensions from convention-encoded strings, and the normalizer
// that flattens everything into benchmark records.
package results

import (
	"bytes"
	"encoding/json"
)

const (
	// SentinelLabel substitutes for any dimension that cannot be resolved.
	SentinelLabel = "unknown"
	// ModeUnknown is the default when a task detail omits its mode.
	ModeUnknown = "unknown"
)

// AnswerTypeStats is the per-category breakdown some task details carry.
type AnswerTypeStats struct {
	Total   int     `json:"total"`
	Correct int     `json:"correct"`
	Acc     float64 `json:"acc"`
}

// BenchmarkRecord is one flattened benchmark result. Records are immutable
// once created: the store rebuilds the full set on every document load and
// every other component works on derived views.
type BenchmarkRecord struct {
	ID                    string          `json:"id"`
	ModelPath             string          `json:"model_path"`
	ModelName             string          `json:"model_name"`
	ModelFamily           *string         `json:"model_family"`
	Task                  *string         `json:"task"`
	Technique             *string         `json:"technique"`
	BenchmarkName         string          `json:"benchmark_name"`
	CreatedAt             *string         `json:"created_at"`
	Total                 int             `json:"total"`
	Correct               int             `json:"correct"`
	AccuracyPercent       float64         `json:"accuracy_percent"`
	ByAnswerType          json.RawMessage `json:"by_answer_type"`
	Mode                  string          `json:"mode"`
	GeneratedMaxNewTokens *int            `json:"generated_max_new_tokens"`
	StopOnAnswer          *bool           `json:"stop_on_answer"`
	RuntimeSeconds        *float64        `json:"runtime_seconds"`
	AvgSecondsPerExample  *float64        `json:"avg_seconds_per_example"`
	OutDir                *string         `json:"out_dir"`
	ValJSON               *string         `json:"val_json"`
}

// FamilyLabel returns the resolved model family, or the sentinel label.
func (r BenchmarkRecord) FamilyLabel() string {
	if r.ModelFamily != nil {
		return *r.ModelFamily
	}
	return SentinelLabel
}

// TaskLabel returns the resolved training task, or the sentinel label.
func (r BenchmarkRecord) TaskLabel() string {
	if r.Task != nil {
		return *r.Task
	}
	return SentinelLabel
}

// TechniqueLabel returns the resolved technique, or the sentinel label.
func (r BenchmarkRecord) TechniqueLabel() string {
	if r.Technique != nil {
		return *r.Technique
	}
	return SentinelLabel
}

// TaskDetail is the tolerant view of one task's raw result object. Every
// optional field resolves through a typed accessor that returns a value or
// a defined default; nothing downstream re-checks types.
type TaskDetail struct {
	fields map[string]json.RawMessage
}

// parseTaskDetail returns nil when the value is absent, null, or not an
// object. Anything object-shaped is accepted, field by field.
func parseTaskDetail(raw json.RawMessage) *TaskDetail {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return &TaskDetail{fields: fields}
}

func (d *TaskDetail) raw(key string) json.RawMessage {
	v, ok := d.fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil
	}
	return v
}

// Int coerces a numeric field to an int; non-numeric values become 0.
func (d *TaskDetail) Int(key string) int {
	return int(d.Float(key))
}

// Float coerces a numeric field to a float64; non-numeric values become 0.
func (d *TaskDetail) Float(key string) float64 {
	raw := d.raw(key)
	if raw == nil {
		return 0
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return v
}

// String returns a string field, or "" when absent or not a string.
func (d *TaskDetail) String(key string) string {
	raw := d.raw(key)
	if raw == nil {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// StringPtr returns a string field as a nullable passthrough value.
func (d *TaskDetail) StringPtr(key string) *string {
	raw := d.raw(key)
	if raw == nil {
		return nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// IntPtr returns a numeric field as a nullable passthrough int.
func (d *TaskDetail) IntPtr(key string) *int {
	raw := d.raw(key)
	if raw == nil {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	v := int(f)
	return &v
}

// FloatPtr returns a numeric field as a nullable passthrough float.
func (d *TaskDetail) FloatPtr(key string) *float64 {
	raw := d.raw(key)
	if raw == nil {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// BoolPtr returns a boolean field as a nullable passthrough value.
func (d *TaskDetail) BoolPtr(key string) *bool {
	raw := d.raw(key)
	if raw == nil {
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// Raw returns the verbatim JSON text of a field, or nil when absent/null.
// The exporter relies on this for the by_answer_type passthrough cell.
func (d *TaskDetail) Raw(key string) json.RawMessage {
	return d.raw(key)
}
