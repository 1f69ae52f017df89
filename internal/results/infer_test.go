package results

import "testing"

func deref(t *testing.T, s *string) string {
	t.Helper()
	if s == nil {
		t.Fatalf("expected a value, got nil")
	}
	return *s
}

func TestDecomposeRunKeyFullKey(t *testing.T) {
	parts := DecomposeRunKey("aqua_rat__gemma__bench1")
	if deref(t, parts.Task) != "aqua_rat" {
		t.Errorf("task = %q, want aqua_rat", *parts.Task)
	}
	if deref(t, parts.Family) != "gemma" {
		t.Errorf("family = %q, want gemma", *parts.Family)
	}
	if deref(t, parts.Benchmark) != "bench1" {
		t.Errorf("benchmark = %q, want bench1", *parts.Benchmark)
	}
}

func TestDecomposeRunKeyMissingParts(t *testing.T) {
	parts := DecomposeRunKey("aqua_rat__gemma")
	if parts.Benchmark != nil {
		t.Errorf("benchmark = %q, want nil", *parts.Benchmark)
	}

	parts = DecomposeRunKey("")
	if parts.Task != nil || parts.Family != nil || parts.Benchmark != nil {
		t.Errorf("empty key should decompose to all-nil parts, got %+v", parts)
	}
}

func TestModelNameFromPathMarkerSegment(t *testing.T) {
	name := ModelNameFromPath("/x/grpo/gemma/aqua_rat/merged_fp16")
	if deref(t, name) != "gemma" {
		t.Errorf("model name = %q, want gemma", *name)
	}
}

func TestModelNameFromPathFallsBackToLastDotFreeSegment(t *testing.T) {
	// The segment after the marker has an extension, so the scan falls back.
	name := ModelNameFromPath("/runs/outputs/model.bin/final")
	if deref(t, name) != "final" {
		t.Errorf("model name = %q, want final", *name)
	}

	if got := ModelNameFromPath("model.bin/weights.safetensors"); got != nil {
		t.Errorf("all-extension path should yield nil, got %q", *got)
	}

	if got := ModelNameFromPath(""); got != nil {
		t.Errorf("empty path should yield nil, got %q", *got)
	}
}

func TestTaskFromValJSONPath(t *testing.T) {
	if got := TaskFromValJSONPath("/x/tasks/aqua_rat/val.json"); deref(t, got) != "aqua_rat" {
		t.Errorf("task = %q, want aqua_rat", *got)
	}
	// Case-insensitive marker.
	if got := TaskFromValJSONPath("/x/Tasks/gsm8k/val.json"); deref(t, got) != "gsm8k" {
		t.Errorf("task = %q, want gsm8k", *got)
	}
	// No marker: filename stem.
	if got := TaskFromValJSONPath("/data/arc_easy.json"); deref(t, got) != "arc_easy" {
		t.Errorf("task = %q, want arc_easy", *got)
	}
	if got := TaskFromValJSONPath(""); got != nil {
		t.Errorf("empty path should yield nil, got %q", *got)
	}
}

func TestBenchmarkFromValJSONPathPrefersBenchmarksSegment(t *testing.T) {
	if got := BenchmarkFromValJSONPath("/x/benchmarks/bench7/tasks/aqua_rat/val.json"); deref(t, got) != "bench7" {
		t.Errorf("benchmark = %q, want bench7", *got)
	}
	if got := BenchmarkFromValJSONPath("/x/tasks/aqua_rat/val.json"); deref(t, got) != "aqua_rat" {
		t.Errorf("benchmark = %q, want aqua_rat", *got)
	}
	if got := BenchmarkFromValJSONPath("/data/val.json"); deref(t, got) != "val" {
		t.Errorf("benchmark = %q, want val", *got)
	}
}

func TestTechniqueFromModelPathPriorityOrder(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		// Combined match must be checked before the single-technique ones.
		{"/x/grpo/lora/model", "Lora+GRPO"},
		{"/x/qlora-GRPO/model", "Lora+GRPO"},
		{"/x/grpo/model", "GRPO"},
		{"/x/GRPO/model", "GRPO"},
		{"/x/lora/model", "Lora/QLora"},
		{"/x/qlora/model", "Lora/QLora"},
		{"/x/plain/model", "Base"},
	}
	for _, c := range cases {
		got := TechniqueFromModelPath(c.path)
		if deref(t, got) != c.want {
			t.Errorf("technique(%q) = %q, want %q", c.path, *got, c.want)
		}
	}

	if got := TechniqueFromModelPath("   "); got != nil {
		t.Errorf("blank path should yield nil, got %q", *got)
	}
}
