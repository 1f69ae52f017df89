// Package export serializes the current filtered record population to JSON
// and CSV files with a fixed field order and byte-exact formatting rules.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mwiater/evalscope/internal/notify"
	"github.com/mwiater/evalscope/internal/results"
)

// Row is the flat export projection of a benchmark record. Field order here
// is the contract: JSON object keys and the CSV header both follow it.
type Row struct {
	ID                     string   `json:"id"`
	ModelName              string   `json:"model_name"`
	ModelFamily            *string  `json:"model_family"`
	Task                   *string  `json:"task"`
	Technique              *string  `json:"technique"`
	BenchmarkName          string   `json:"benchmark_name"`
	CreatedAt              *string  `json:"created_at"`
	Total                  int      `json:"total"`
	Correct                int      `json:"correct"`
	AccuracyPercent        float64  `json:"accuracy_percent"`
	Mode                   string   `json:"mode"`
	GeneratedMaxNewTokens  *int     `json:"generated_max_new_tokens"`
	StopOnAnswer           *bool    `json:"stop_on_answer"`
	RuntimeSeconds         *float64 `json:"runtime_seconds"`
	AvgSecondsPerExample   *float64 `json:"avg_seconds_per_example"`
	OutDir                 *string  `json:"out_dir"`
	ValJSON                *string  `json:"val_json"`
	ModelPath              string   `json:"model_path"`
	ByAnswerTypeSerialized *string  `json:"by_answer_type_serialized"`
}

// csvHeader matches the Row field order exactly.
var csvHeader = []string{
	"id", "model_name", "model_family", "task", "technique", "benchmark_name",
	"created_at", "total", "correct", "accuracy_percent", "mode",
	"generated_max_new_tokens", "stop_on_answer", "runtime_seconds",
	"avg_seconds_per_example", "out_dir", "val_json", "model_path",
	"by_answer_type_serialized",
}

// BuildRow projects one record into its export row. by_answer_type cannot
// populate a single flat cell, so its exact JSON text rides in a derived
// field instead.
func BuildRow(r results.BenchmarkRecord) Row {
	var byAnswerType *string
	if r.ByAnswerType != nil {
		s := string(r.ByAnswerType)
		byAnswerType = &s
	}
	return Row{
		ID:                     r.ID,
		ModelName:              r.ModelName,
		ModelFamily:            r.ModelFamily,
		Task:                   r.Task,
		Technique:              r.Technique,
		BenchmarkName:          r.BenchmarkName,
		CreatedAt:              r.CreatedAt,
		Total:                  r.Total,
		Correct:                r.Correct,
		AccuracyPercent:        r.AccuracyPercent,
		Mode:                   r.Mode,
		GeneratedMaxNewTokens:  r.GeneratedMaxNewTokens,
		StopOnAnswer:           r.StopOnAnswer,
		RuntimeSeconds:         r.RuntimeSeconds,
		AvgSecondsPerExample:   r.AvgSecondsPerExample,
		OutDir:                 r.OutDir,
		ValJSON:                r.ValJSON,
		ModelPath:              r.ModelPath,
		ByAnswerTypeSerialized: byAnswerType,
	}
}

// cells renders the row's CSV field values in header order; nulls render as
// empty strings.
func (row Row) cells() []string {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	intPtr := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}
	floatPtr := func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	boolPtr := func(p *bool) string {
		if p == nil {
			return ""
		}
		return strconv.FormatBool(*p)
	}
	return []string{
		row.ID,
		row.ModelName,
		str(row.ModelFamily),
		str(row.Task),
		str(row.Technique),
		row.BenchmarkName,
		str(row.CreatedAt),
		strconv.Itoa(row.Total),
		strconv.Itoa(row.Correct),
		strconv.FormatFloat(row.AccuracyPercent, 'f', -1, 64),
		row.Mode,
		intPtr(row.GeneratedMaxNewTokens),
		boolPtr(row.StopOnAnswer),
		floatPtr(row.RuntimeSeconds),
		floatPtr(row.AvgSecondsPerExample),
		str(row.OutDir),
		str(row.ValJSON),
		row.ModelPath,
		str(row.ByAnswerTypeSerialized),
	}
}

// csvField applies the quoting rules: a field containing a double quote,
// comma, semicolon, or newline is wrapped in double quotes with internal
// quotes doubled. encoding/csv cannot express these rules for a ";"
// delimiter, so the escaping is explicit.
func csvField(v string) string {
	if strings.ContainsAny(v, "\",;\n\r") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

// Exporter writes export files into a directory and reports through the
// notice collaborator. Now is swappable for deterministic filenames in
// tests.
type Exporter struct {
	Dir      string
	Notifier notify.Notifier
	Now      func() time.Time
}

// New builds an exporter writing into dir.
func New(dir string, notifier notify.Notifier) *Exporter {
	return &Exporter{Dir: dir, Notifier: notifier, Now: time.Now}
}

// timestamp embeds an ISO-8601 timestamp with ":" and "." replaced so the
// result is filename-safe everywhere.
func (e *Exporter) timestamp() string {
	iso := e.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	iso = strings.ReplaceAll(iso, ":", "-")
	return strings.ReplaceAll(iso, ".", "-")
}

// refuseEmpty guards both formats: exporting zero records aborts with a
// notice and produces no file.
func (e *Exporter) refuseEmpty(records []results.BenchmarkRecord) bool {
	if len(records) > 0 {
		return false
	}
	e.Notifier.Notify("Export skipped",
		"no records match the current filters", notify.SeverityWarning)
	return true
}

// writeFile persists one export. Failures go through the notifier as well as
// the error return, so callers that discard the error (the explorer does)
// still surface the failure to the user.
func (e *Exporter) writeFile(name string, data []byte) (string, error) {
	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0o755); err != nil {
			err = fmt.Errorf("unable to create export directory %s: %w", e.Dir, err)
			e.Notifier.Notify("Export failed", err.Error(), notify.SeverityError)
			return "", err
		}
	}
	path := filepath.Join(e.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		err = fmt.Errorf("unable to write export file %s: %w", path, err)
		e.Notifier.Notify("Export failed", err.Error(), notify.SeverityError)
		return "", err
	}
	return path, nil
}

// ExportJSON writes the population as a pretty-printed (2-space indent)
// UTF-8 JSON array. The empty-population path returns ("", nil).
func (e *Exporter) ExportJSON(records []results.BenchmarkRecord) (string, error) {
	if e.refuseEmpty(records) {
		return "", nil
	}
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, BuildRow(r))
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("unable to marshal export rows: %w", err)
	}
	path, err := e.writeFile("benchmarks-export-"+e.timestamp()+".json", data)
	if err != nil {
		return "", err
	}
	e.Notifier.Notify("Export complete",
		fmt.Sprintf("%d records written to %s", len(records), path), notify.SeveritySuccess)
	return path, nil
}

// ExportCSV writes the population as ";"-delimited UTF-8 CSV with the fixed
// header row first. The empty-population path returns ("", nil).
func (e *Exporter) ExportCSV(records []results.BenchmarkRecord) (string, error) {
	if e.refuseEmpty(records) {
		return "", nil
	}
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ";"))
	b.WriteByte('\n')
	for _, r := range records {
		cells := BuildRow(r).cells()
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(csvField(cell))
		}
		b.WriteByte('\n')
	}
	path, err := e.writeFile("benchmarks-export-"+e.timestamp()+".csv", []byte(b.String()))
	if err != nil {
		return "", err
	}
	e.Notifier.Notify("Export complete",
		fmt.Sprintf("%d records written to %s", len(records), path), notify.SeveritySuccess)
	return path, nil
}
