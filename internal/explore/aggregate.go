package explore

import (
	"sort"

	"github.com/mwiater/evalscope/internal/results"
)

// DetailLimit caps the aggregate-detail benchmark list.
const DetailLimit = 10

// BenchmarkScore references one benchmark's accuracy for a model.
type BenchmarkScore struct {
	BenchmarkLabel string  `json:"benchmarkLabel"`
	Accuracy       float64 `json:"accuracy"`
}

// ModelSummary is the per-model aggregate: mean accuracy over the aggregate
// view plus the best and worst benchmark encountered.
type ModelSummary struct {
	ModelName      string         `json:"modelName"`
	Average        float64        `json:"average"`
	BenchmarkCount int            `json:"benchmarkCount"`
	Best           BenchmarkScore `json:"best"`
	Worst          BenchmarkScore `json:"worst"`
}

// Aggregate computes one summary per distinct model, in first-seen order.
// Best uses strict greater-than and worst strict less-than, so the first
// record seen wins exact ties. Averages use raw, unclamped accuracy values.
func Aggregate(records []results.BenchmarkRecord) []ModelSummary {
	type accumulator struct {
		sum   float64
		count int
		best  BenchmarkScore
		worst BenchmarkScore
	}

	var order []string
	index := make(map[string]int)
	var accs []*accumulator

	for _, r := range records {
		score := BenchmarkScore{BenchmarkLabel: r.BenchmarkName, Accuracy: r.AccuracyPercent}
		i, seen := index[r.ModelName]
		if !seen {
			i = len(order)
			index[r.ModelName] = i
			order = append(order, r.ModelName)
			accs = append(accs, &accumulator{best: score, worst: score})
		}
		acc := accs[i]
		acc.sum += r.AccuracyPercent
		acc.count++
		if seen {
			if score.Accuracy > acc.best.Accuracy {
				acc.best = score
			}
			if score.Accuracy < acc.worst.Accuracy {
				acc.worst = score
			}
		}
	}

	summaries := make([]ModelSummary, 0, len(order))
	for i, name := range order {
		acc := accs[i]
		summaries = append(summaries, ModelSummary{
			ModelName:      name,
			Average:        acc.sum / float64(acc.count),
			BenchmarkCount: acc.count,
			Best:           acc.best,
			Worst:          acc.worst,
		})
	}
	return summaries
}

// TopModel returns the summary with the maximum average; the first maximal
// entry encountered wins ties. ok is false for an empty input.
func TopModel(summaries []ModelSummary) (ModelSummary, bool) {
	if len(summaries) == 0 {
		return ModelSummary{}, false
	}
	top := summaries[0]
	for _, s := range summaries[1:] {
		if s.Average > top.Average {
			top = s
		}
	}
	return top, true
}

// clampPercent bounds an accuracy value into [0,100] for display. The
// averaging above deliberately stays unclamped.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// DetailBenchmarks lists a model's benchmarks from the aggregate view for
// the detail panel: accuracy clamped into [0,100] for display only, sorted
// by clamped accuracy descending, truncated to DetailLimit entries.
func DetailBenchmarks(records []results.BenchmarkRecord, modelName string) []BenchmarkScore {
	var scores []BenchmarkScore
	for _, r := range records {
		if r.ModelName != modelName {
			continue
		}
		scores = append(scores, BenchmarkScore{
			BenchmarkLabel: r.BenchmarkName,
			Accuracy:       clampPercent(r.AccuracyPercent),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Accuracy > scores[j].Accuracy
	})
	if len(scores) > DetailLimit {
		scores = scores[:DetailLimit]
	}
	return scores
}
