// Package metrics computes language-comparable complexity and
// maintainability scores from raw source text. The AST walk, Halstead
// estimator, and maintainability formula are shared across languages;
// everything language-specific arrives as a LanguageProfile.
package metrics

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
)

// Complexity holds the control-flow metrics produced by ASTComplexity.
type Complexity struct {
	Cyclomatic   float64 `json:"cyclomatic"`
	Cognitive    float64 `json:"cognitive"`
	NestingDepth int     `json:"nesting_depth"`
	ExitPoints   int     `json:"exit_points"`
}

// Halstead holds the operator/operand metrics produced by HalsteadEstimate.
type Halstead struct {
	TotalOperators  uint64  `json:"total_operators"`
	TotalOperands   uint64  `json:"total_operands"`
	UniqueOperators uint64  `json:"unique_operators"`
	UniqueOperands  uint64  `json:"unique_operands"`
	Volume          float64 `json:"volume"`
	Difficulty      float64 `json:"difficulty"`
	Effort          float64 `json:"effort"`
}

// Maintainability combines the composite index with its derived ratios.
type Maintainability struct {
	Index                 float64 `json:"index"`                  // [0,100]
	TechnicalDebtRatio    float64 `json:"technical_debt_ratio"`   // [0,1]
	DuplicationPercentage float64 `json:"duplication_percentage"` // [0,100]
}

// LineCounts classifies the lines of a source file.
type LineCounts struct {
	Total   int `json:"total"`
	Source  int `json:"source"`
	Comment int `json:"comment"`
	Blank   int `json:"blank"`
}

// CommentStyle describes how a language marks comments, for line counting.
type CommentStyle struct {
	LinePrefixes []string    // e.g. "//", "#"
	BlockPairs   [][2]string // e.g. {"/*", "*/"}
}

// LanguageProfile is the declarative per-language configuration driving the
// shared engine. Profiles are plain data; the engine contains no per-language
// branching.
type LanguageProfile struct {
	Grammar *sitter.Language

	// Node kind names, as the grammar reports them.
	BranchKinds  map[string]bool
	ExitKinds    map[string]bool
	BooleanKinds map[string]bool

	// Lexical configuration for the Halstead estimator.
	OperatorPattern   *regexp.Regexp
	IdentifierPattern *regexp.Regexp
	Keywords          map[string]bool

	Comments CommentStyle
}

// Report is the combined metrics output for one source file.
type Report struct {
	Lines           LineCounts      `json:"lines"`
	Complexity      Complexity      `json:"complexity"`
	Halstead        Halstead        `json:"halstead"`
	Maintainability Maintainability `json:"maintainability"`
}

// Analyze runs the full metrics pipeline over source using profile. It never
// fails: an unloadable or unparsable grammar degrades to neutral complexity
// so one broken file cannot abort a larger analysis run.
func Analyze(source string, profile LanguageProfile) Report {
	lines := CountLines(source, profile.Comments)

	cyclomatic, cognitive, depth, exits := ASTComplexity(
		source,
		profile.Grammar,
		profile.BranchKinds,
		profile.ExitKinds,
		profile.BooleanKinds,
	)
	if exits < 1 {
		exits = 1 // implicit return
	}

	halstead := HalsteadEstimate(source, profile.OperatorPattern, profile.IdentifierPattern, profile.Keywords)

	mi := MaintainabilityIndex(halstead.Volume, cyclomatic, float64(lines.Source), float64(lines.Comment))

	return Report{
		Lines: lines,
		Complexity: Complexity{
			Cyclomatic:   cyclomatic,
			Cognitive:    cognitive,
			NestingDepth: depth,
			ExitPoints:   exits,
		},
		Halstead: halstead,
		Maintainability: Maintainability{
			Index:                 mi,
			TechnicalDebtRatio:    TechnicalDebtRatio(mi),
			DuplicationPercentage: DuplicationPercentage(source),
		},
	}
}
