// Package explore powers the interactive exploration surface: cascading
// multi-field filtering, the list and aggregate record populations, per-model
// averaging, and deterministic pagination.
package explore

import (
	"sort"

	"github.com/mwiater/evalscope/internal/results"
)

// All is the wildcard selection for every filter dimension.
const All = "all"

// Dimension identifies one filter field. The declared order below is the
// dependency ordering, outer to inner: an outer selection restricts the
// option sets of every inner dimension, never the reverse.
type Dimension int

const (
	DimTask Dimension = iota
	DimFamily
	DimModel
	DimTechnique
	DimBenchmark
)

// DimensionOrder is the filter dependency ordering, outer to inner.
var DimensionOrder = []Dimension{DimTask, DimFamily, DimModel, DimTechnique, DimBenchmark}

// String names the dimension for display.
func (d Dimension) String() string {
	switch d {
	case DimTask:
		return "task"
	case DimFamily:
		return "family"
	case DimModel:
		return "model"
	case DimTechnique:
		return "technique"
	case DimBenchmark:
		return "benchmark"
	default:
		return "unknown"
	}
}

// ViewMode selects between the per-record list and the per-model aggregate.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewAggregate
)

// SortOrder orders the list view by accuracy. Descending is the default.
type SortOrder int

const (
	SortDescending SortOrder = iota
	SortAscending
)

// Engine holds the five filter selections plus the view mode and list sort
// order, and computes the derived record populations. All state is owned by
// one logical caller; nothing here is safe for concurrent mutation and
// nothing needs to be.
type Engine struct {
	records    []results.BenchmarkRecord
	selections [5]string
	mode       ViewMode
	sort       SortOrder
}

// NewEngine builds an engine over a record set with every dimension at the
// wildcard, list view, descending sort.
func NewEngine(records []results.BenchmarkRecord) *Engine {
	e := &Engine{records: records, mode: ViewList, sort: SortDescending}
	for i := range e.selections {
		e.selections[i] = All
	}
	return e
}

// SetRecords swaps in a freshly loaded record set and re-applies the
// self-healing invariant.
func (e *Engine) SetRecords(records []results.BenchmarkRecord) {
	e.records = records
	e.healModel()
}

// Mode returns the active view mode.
func (e *Engine) Mode() ViewMode { return e.mode }

// SetMode switches between list and aggregate views. Selections survive the
// switch; only task changes cascade.
func (e *Engine) SetMode(mode ViewMode) { e.mode = mode }

// Sort returns the list view sort order.
func (e *Engine) Sort() SortOrder { return e.sort }

// SetSort sets the list view sort order.
func (e *Engine) SetSort(order SortOrder) { e.sort = order }

// ToggleSort flips the list view sort order.
func (e *Engine) ToggleSort() {
	if e.sort == SortDescending {
		e.sort = SortAscending
	} else {
		e.sort = SortDescending
	}
}

// Selection returns the active value for a dimension ("all" or concrete).
func (e *Engine) Selection(d Dimension) string { return e.selections[d] }

// Select applies a new value to a dimension. Re-selecting the active value
// is a strict no-op. Changing the task cascades: inner selections reset to
// the wildcard, the benchmark filter included only in list view, where the
// sort order also snaps back to its default. One generic walk over the
// declared ordering does all resetting.
func (e *Engine) Select(d Dimension, value string) {
	if e.selections[d] == value {
		return
	}
	e.selections[d] = value

	if d == DimTask {
		for _, inner := range DimensionOrder[int(d)+1:] {
			if inner == DimBenchmark && e.mode == ViewAggregate {
				continue
			}
			e.selections[inner] = All
		}
		if e.mode == ViewList {
			e.sort = SortDescending
		}
	}

	e.healModel()
}

// healModel enforces the self-healing invariant: a concrete model selection
// must always be a member of its own live option set.
func (e *Engine) healModel() {
	sel := e.selections[DimModel]
	if sel == All {
		return
	}
	for _, opt := range e.Options(DimModel) {
		if opt == sel {
			return
		}
	}
	e.selections[DimModel] = All
}

// dimensionValue resolves a record's display value for one dimension;
// unresolvable dimensions carry the sentinel label and filter as such.
func dimensionValue(r results.BenchmarkRecord, d Dimension) string {
	switch d {
	case DimTask:
		return r.TaskLabel()
	case DimFamily:
		return r.FamilyLabel()
	case DimModel:
		return r.ModelName
	case DimTechnique:
		return r.TechniqueLabel()
	case DimBenchmark:
		return r.BenchmarkName
	default:
		return results.SentinelLabel
	}
}

// Options returns the live option set for a dimension: the distinct values
// among records matching the active selections of all outer dimensions.
// Inner selections never restrict an outer option set.
func (e *Engine) Options(d Dimension) []string {
	seen := make(map[string]struct{})
	var options []string
	for _, r := range e.records {
		if !e.matchesOuter(r, d) {
			continue
		}
		v := dimensionValue(r, d)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		options = append(options, v)
	}
	sort.Strings(options)
	return options
}

// OptionCounts tallies records per option value for a dimension under the
// active outer selections. The picker shows these next to each option.
func (e *Engine) OptionCounts(d Dimension) map[string]int {
	counts := make(map[string]int)
	for _, r := range e.records {
		if e.matchesOuter(r, d) {
			counts[dimensionValue(r, d)]++
		}
	}
	return counts
}

// matchesOuter checks a record against the selections of every dimension
// strictly outer to d.
func (e *Engine) matchesOuter(r results.BenchmarkRecord, d Dimension) bool {
	for _, outer := range DimensionOrder {
		if outer == d {
			return true
		}
		sel := e.selections[outer]
		if sel != All && dimensionValue(r, outer) != sel {
			return false
		}
	}
	return true
}

// matches is the filter predicate: the AND of per-dimension equality, with
// the benchmark check skippable.
func (e *Engine) matches(r results.BenchmarkRecord, ignoreBenchmark bool) bool {
	for _, d := range DimensionOrder {
		if d == DimBenchmark && ignoreBenchmark {
			continue
		}
		sel := e.selections[d]
		if sel != All && dimensionValue(r, d) != sel {
			return false
		}
	}
	return true
}

// FullView is the fully filtered population, sorted by accuracy for the
// list display, counters, and exports. The sort is stable so that equal
// accuracies keep document order.
func (e *Engine) FullView() []results.BenchmarkRecord {
	var view []results.BenchmarkRecord
	for _, r := range e.records {
		if e.matches(r, false) {
			view = append(view, r)
		}
	}
	sort.SliceStable(view, func(i, j int) bool {
		if e.sort == SortAscending {
			return view[i].AccuracyPercent < view[j].AccuracyPercent
		}
		return view[i].AccuracyPercent > view[j].AccuracyPercent
	})
	return view
}

// AggregateView is the population feeding per-model averaging. It ignores
// the benchmark filter so a benchmark-only change never distorts a model's
// average, and it keeps document order for deterministic tie-breaking.
func (e *Engine) AggregateView() []results.BenchmarkRecord {
	var view []results.BenchmarkRecord
	for _, r := range e.records {
		if e.matches(r, true) {
			view = append(view, r)
		}
	}
	return view
}
