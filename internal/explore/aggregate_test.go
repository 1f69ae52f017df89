package explore

import (
	"math"
	"testing"

	"github.com/mwiater/evalscope/internal/results"
)

func score(model, bench string, acc float64) results.BenchmarkRecord {
	return results.BenchmarkRecord{
		ID:              model + "__" + bench,
		ModelName:       model,
		BenchmarkName:   bench,
		AccuracyPercent: acc,
		Mode:            results.ModeUnknown,
	}
}

func TestAggregateAveragesAndExtremes(t *testing.T) {
	summaries := Aggregate([]results.BenchmarkRecord{
		score("gemma", "bench1", 80),
		score("gemma", "bench2", 40),
		score("phi3", "bench1", 64),
	})
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	g := summaries[0]
	if g.ModelName != "gemma" {
		t.Fatalf("first-seen order violated: %q", g.ModelName)
	}
	if g.Average != 60 || g.BenchmarkCount != 2 {
		t.Errorf("gemma average = %v over %d, want 60 over 2", g.Average, g.BenchmarkCount)
	}
	if g.Best.BenchmarkLabel != "bench1" || g.Best.Accuracy != 80 {
		t.Errorf("best = %+v", g.Best)
	}
	if g.Worst.BenchmarkLabel != "bench2" || g.Worst.Accuracy != 40 {
		t.Errorf("worst = %+v", g.Worst)
	}

	p := summaries[1]
	if p.Average != 64 || p.Best.BenchmarkLabel != "bench1" || p.Worst.BenchmarkLabel != "bench1" {
		t.Errorf("single-benchmark summary = %+v", p)
	}
}

func TestAggregateFirstSeenWinsExactTies(t *testing.T) {
	summaries := Aggregate([]results.BenchmarkRecord{
		score("m", "first", 70),
		score("m", "second", 70),
	})
	s := summaries[0]
	if s.Best.BenchmarkLabel != "first" || s.Worst.BenchmarkLabel != "first" {
		t.Errorf("tie must keep the first record seen, got best=%q worst=%q",
			s.Best.BenchmarkLabel, s.Worst.BenchmarkLabel)
	}
}

func TestAggregateUsesUnclampedAccuracies(t *testing.T) {
	summaries := Aggregate([]results.BenchmarkRecord{
		score("m", "hot", 150),
		score("m", "cold", 50),
	})
	if got := summaries[0].Average; got != 100 {
		t.Errorf("average must use raw values, got %v", got)
	}
	if summaries[0].Best.Accuracy != 150 {
		t.Errorf("best must stay unclamped, got %v", summaries[0].Best.Accuracy)
	}
}

func TestAggregateDeterministicOrder(t *testing.T) {
	records := []results.BenchmarkRecord{
		score("zeta", "b", 10),
		score("alpha", "b", 20),
		score("zeta", "c", 30),
	}
	summaries := Aggregate(records)
	if summaries[0].ModelName != "zeta" || summaries[1].ModelName != "alpha" {
		t.Fatalf("summaries must follow first-seen document order, got %+v", summaries)
	}
}

func TestTopModelFirstMaximalWinsTies(t *testing.T) {
	summaries := []ModelSummary{
		{ModelName: "a", Average: 60},
		{ModelName: "b", Average: 75},
		{ModelName: "c", Average: 75},
	}
	top, ok := TopModel(summaries)
	if !ok || top.ModelName != "b" {
		t.Fatalf("top = %+v ok=%v, want the first maximal entry b", top, ok)
	}

	if _, ok := TopModel(nil); ok {
		t.Fatalf("empty input must report ok=false")
	}
}

func TestDetailBenchmarksClampSortLimit(t *testing.T) {
	records := []results.BenchmarkRecord{
		score("m", "over", 130),
		score("m", "under", -5),
		score("m", "mid", 55),
		score("other", "noise", 99),
	}
	details := DetailBenchmarks(records, "m")
	if len(details) != 3 {
		t.Fatalf("expected 3 details, got %d", len(details))
	}
	if details[0].BenchmarkLabel != "over" || details[0].Accuracy != 100 {
		t.Errorf("display accuracy must clamp to 100, got %+v", details[0])
	}
	if details[2].BenchmarkLabel != "under" || details[2].Accuracy != 0 {
		t.Errorf("display accuracy must clamp to 0, got %+v", details[2])
	}
	for i := 1; i < len(details); i++ {
		if details[i].Accuracy > details[i-1].Accuracy {
			t.Errorf("details must sort descending: %+v", details)
		}
	}
}

func TestDetailBenchmarksTruncatesToLimit(t *testing.T) {
	var records []results.BenchmarkRecord
	for i := 0; i < DetailLimit+4; i++ {
		records = append(records, score("m", "bench", float64(i)))
	}
	details := DetailBenchmarks(records, "m")
	if len(details) != DetailLimit {
		t.Fatalf("detail list must truncate to %d, got %d", DetailLimit, len(details))
	}
	if details[0].Accuracy != float64(DetailLimit+3) {
		t.Errorf("truncation must keep the highest scores, got %v", details[0].Accuracy)
	}
}

func TestAggregateAverageOfNegativeValues(t *testing.T) {
	summaries := Aggregate([]results.BenchmarkRecord{
		score("m", "a", -10),
		score("m", "b", 10),
	})
	if got := summaries[0].Average; math.Abs(got) > 1e-9 {
		t.Errorf("average = %v, want 0", got)
	}
}
