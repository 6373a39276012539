package metrics

import (
	"math"
	"strings"
)

// MaintainabilityIndex computes the Visual Studio variant of the
// maintainability index, rescaled to [0,100]. A file with no source lines is
// maximally maintainable. Non-finite intermediate values coerce to 0 before
// clamping.
func MaintainabilityIndex(volume, cyclomatic, sloc, cloc float64) float64 {
	if sloc <= 0 {
		return 100.0
	}

	commentRatio := cloc / sloc

	var volumeTerm float64
	if volume > 0 {
		volumeTerm = math.Log(volume)
	}

	raw := 171.0 - 5.2*volumeTerm - 0.23*cyclomatic - 16.2*math.Log(sloc)
	mi := raw*100.0/171.0 + 50.0*math.Sin(math.Sqrt(commentRatio*2.4))

	if math.IsNaN(mi) || math.IsInf(mi, 0) {
		mi = 0
	}
	return clamp(mi, 0, 100)
}

// TechnicalDebtRatio derives a [0,1] debt ratio from a maintainability index.
func TechnicalDebtRatio(mi float64) float64 {
	return clamp((100.0-mi)/100.0, 0, 1)
}

// DuplicationPercentage reports the share of non-blank lines that occur more
// than once in source, as a value in [0,100]. Whitespace differences are
// ignored.
func DuplicationPercentage(source string) float64 {
	counts := make(map[string]int)
	total := 0
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		counts[trimmed]++
		total++
	}
	if total == 0 {
		return 0
	}

	duplicated := 0
	for _, c := range counts {
		if c > 1 {
			duplicated += c
		}
	}
	return float64(duplicated) / float64(total) * 100.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
