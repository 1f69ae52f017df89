package results

import "strings"

// Run keys and artifact paths encode their dimensions by convention:
// {training task}__{model family}__{benchmark} for keys, and marker segments
// like "grpo" or "tasks" inside paths. Everything here is pure and total —
// malformed input yields nil, never an error.

// pathMarkers precede the model-name segment in output paths.
var pathMarkers = map[string]struct{}{
	"grpo":    {},
	"lora":    {},
	"qlora":   {},
	"outputs": {},
}

// RunKeyParts holds the decomposed segments of a run key. Missing segments
// are nil.
type RunKeyParts struct {
	Task      *string
	Family    *string
	Benchmark *string
}

// DecomposeRunKey splits a run key on the double-underscore separator.
// part[0] is the training task, part[1] the model family, part[2] the
// benchmark name when present.
func DecomposeRunKey(key string) RunKeyParts {
	parts := strings.Split(key, "__")
	pick := func(i int) *string {
		if i >= len(parts) {
			return nil
		}
		s := strings.TrimSpace(parts[i])
		if s == "" {
			return nil
		}
		return &s
	}
	return RunKeyParts{Task: pick(0), Family: pick(1), Benchmark: pick(2)}
}

// splitPath breaks a path on "/" and drops empty segments.
func splitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// fileStem returns the last path segment without its extension, or nil for
// an empty path.
func fileStem(segs []string) *string {
	if len(segs) == 0 {
		return nil
	}
	base := segs[len(segs)-1]
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	if base == "" {
		return nil
	}
	return &base
}

// ModelNameFromPath recovers a model name from an output path: the segment
// following a marker (grpo/lora/qlora/outputs) when it carries no extension,
// else the last extension-free segment.
func ModelNameFromPath(path string) *string {
	segs := splitPath(path)
	if len(segs) == 0 {
		return nil
	}
	for i, s := range segs {
		if _, ok := pathMarkers[strings.ToLower(s)]; !ok || i+1 >= len(segs) {
			continue
		}
		next := segs[i+1]
		if !strings.Contains(next, ".") {
			return &next
		}
		break
	}
	for i := len(segs) - 1; i >= 0; i-- {
		if !strings.Contains(segs[i], ".") {
			return &segs[i]
		}
	}
	return nil
}

// segmentAfter returns the segment following the first segment equal to
// marker, case-insensitively.
func segmentAfter(segs []string, marker string) *string {
	for i, s := range segs {
		if strings.EqualFold(s, marker) && i+1 < len(segs) {
			return &segs[i+1]
		}
	}
	return nil
}

// TaskFromValJSONPath derives the training task from a validation-set path:
// the segment after "tasks", else the filename stem.
func TaskFromValJSONPath(path string) *string {
	segs := splitPath(path)
	if next := segmentAfter(segs, "tasks"); next != nil {
		return next
	}
	return fileStem(segs)
}

// BenchmarkFromValJSONPath derives a benchmark name from a validation-set
// path: the segment after "benchmarks", else after "tasks", else the
// filename stem.
func BenchmarkFromValJSONPath(path string) *string {
	segs := splitPath(path)
	if next := segmentAfter(segs, "benchmarks"); next != nil {
		return next
	}
	if next := segmentAfter(segs, "tasks"); next != nil {
		return next
	}
	return fileStem(segs)
}

// TechniqueFromModelPath infers the training technique from path markers.
// The combined Lora+GRPO check must run before the single-technique checks.
func TechniqueFromModelPath(path string) *string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	lower := strings.ToLower(path)
	hasGRPO := strings.Contains(lower, "grpo")
	hasLora := strings.Contains(lower, "lora") || strings.Contains(lower, "qlora")

	var technique string
	switch {
	case hasGRPO && hasLora:
		technique = "Lora+GRPO"
	case hasGRPO:
		technique = "GRPO"
	case hasLora:
		technique = "Lora/QLora"
	default:
		technique = "Base"
	}
	return &technique
}
