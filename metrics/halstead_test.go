package metrics_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/codescope/metrics"
)

var (
	testOps    = regexp.MustCompile(`[-+*/=<>]+`)
	testIdents = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

func TestHalsteadEstimateEmptySource(t *testing.T) {
	h := metrics.HalsteadEstimate("", testOps, testIdents, nil)

	assert.Zero(t, h.TotalOperators)
	assert.Zero(t, h.TotalOperands)
	assert.Zero(t, h.Volume)
	assert.Zero(t, h.Difficulty)
	assert.Zero(t, h.Effort)
}

func TestHalsteadEstimateCounts(t *testing.T) {
	// Operators: "=" and "+" once each. Operands: a, b, c.
	h := metrics.HalsteadEstimate("a = b + c", testOps, testIdents, nil)

	assert.Equal(t, uint64(2), h.TotalOperators)
	assert.Equal(t, uint64(3), h.TotalOperands)
	assert.Equal(t, uint64(2), h.UniqueOperators)
	assert.Equal(t, uint64(3), h.UniqueOperands)

	// length=5, vocabulary=5
	assert.InDelta(t, 5.0*math.Log2(5.0), h.Volume, 1e-9)
	// (n1/2) * (N2/n2) = (2/2)*(3/3)
	assert.InDelta(t, 1.0, h.Difficulty, 1e-9)
	assert.InDelta(t, h.Volume, h.Effort, 1e-9)
}

func TestHalsteadEstimateKeywordsAreNotOperands(t *testing.T) {
	keywords := map[string]bool{"return": true, "if": true}
	h := metrics.HalsteadEstimate("if x return y", testOps, testIdents, keywords)

	assert.Equal(t, uint64(2), h.TotalOperands)
	assert.Equal(t, uint64(2), h.UniqueOperands)
}

func TestHalsteadEstimateNoOperands(t *testing.T) {
	keywords := map[string]bool{"return": true}
	h := metrics.HalsteadEstimate("return = return", testOps, testIdents, keywords)

	assert.Zero(t, h.UniqueOperands)
	assert.Zero(t, h.Difficulty, "difficulty is 0 when there are no operands")
	assert.Zero(t, h.Effort)
}

func TestHalsteadEstimateSingleToken(t *testing.T) {
	// One unique token keeps vocabulary at 1, so volume stays 0.
	h := metrics.HalsteadEstimate("foo foo foo", nil, testIdents, nil)

	assert.Equal(t, uint64(3), h.TotalOperands)
	assert.Equal(t, uint64(1), h.UniqueOperands)
	assert.Zero(t, h.Volume)
}
