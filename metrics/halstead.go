package metrics

import (
	"math"
	"regexp"
)

// HalsteadEstimate tallies operator and operand tokens lexically. Operators
// are matches of operatorPattern; operands are identifierPattern matches not
// present in keywords. This is a regex approximation, not AST-exact: the
// quality of the per-language patterns directly bounds accuracy.
func HalsteadEstimate(
	source string,
	operatorPattern, identifierPattern *regexp.Regexp,
	keywords map[string]bool,
) Halstead {
	operatorCounts := make(map[string]uint64)
	if operatorPattern != nil {
		for _, tok := range operatorPattern.FindAllString(source, -1) {
			operatorCounts[tok]++
		}
	}

	operandCounts := make(map[string]uint64)
	if identifierPattern != nil {
		for _, tok := range identifierPattern.FindAllString(source, -1) {
			if keywords[tok] {
				continue
			}
			operandCounts[tok]++
		}
	}

	n1 := uint64(len(operatorCounts))
	n2 := uint64(len(operandCounts))
	var totalOperators, totalOperands uint64
	for _, c := range operatorCounts {
		totalOperators += c
	}
	for _, c := range operandCounts {
		totalOperands += c
	}

	length := float64(totalOperators + totalOperands)
	vocabulary := float64(n1 + n2)

	var volume float64
	if vocabulary > 1 {
		volume = length * math.Log2(vocabulary)
	}

	var difficulty float64
	if n2 > 0 {
		difficulty = (float64(n1) / 2.0) * (float64(totalOperands) / float64(n2))
	}

	return Halstead{
		TotalOperators:  totalOperators,
		TotalOperands:   totalOperands,
		UniqueOperators: n1,
		UniqueOperands:  n2,
		Volume:          volume,
		Difficulty:      difficulty,
		Effort:          difficulty * volume,
	}
}
