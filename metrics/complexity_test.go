package metrics_test

import (
	"testing"

	tselixir "github.com/smacker/go-tree-sitter/elixir"
	tsgo "github.com/smacker/go-tree-sitter/golang"
	"github.com/stretchr/testify/assert"

	"github.com/oxhq/codescope/metrics"
)

var goBranchKinds = map[string]bool{
	"if_statement":                true,
	"for_statement":               true,
	"expression_switch_statement": true,
	"expression_case":             true,
}

var goExitKinds = map[string]bool{
	"return_statement": true,
}

func TestASTComplexityNilGrammar(t *testing.T) {
	cyclo, cognitive, depth, exits := metrics.ASTComplexity("whatever", nil, nil, nil, nil)

	assert.Equal(t, 1.0, cyclo)
	assert.Equal(t, 0.0, cognitive)
	assert.Equal(t, 0, depth)
	assert.Equal(t, 0, exits)
}

func TestASTComplexityBranchFree(t *testing.T) {
	source := `package main

func add(a, b int) int {
	return a + b
}
`
	cyclo, cognitive, depth, exits := metrics.ASTComplexity(
		source, tsgo.GetLanguage(), goBranchKinds, goExitKinds, nil)

	assert.Equal(t, 1.0, cyclo, "no branches floors to 1")
	assert.Equal(t, 0.0, cognitive)
	assert.Equal(t, 0, depth, "depth only tracks branch nodes")
	assert.Equal(t, 1, exits)
}

func TestASTComplexityCountsBranches(t *testing.T) {
	source := `package main

func classify(n int) string {
	if n < 0 {
		return "negative"
	}
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			return "even seen"
		}
	}
	return "done"
}
`
	cyclo, cognitive, depth, exits := metrics.ASTComplexity(
		source, tsgo.GetLanguage(), goBranchKinds, goExitKinds, nil)

	assert.Equal(t, 3.0, cyclo, "two ifs and one for")
	assert.Greater(t, cognitive, 0.0, "nesting penalty applies")
	assert.Greater(t, depth, 0)
	assert.Equal(t, 3, exits)
}

func TestASTComplexityNestingRaisesCognitive(t *testing.T) {
	flat := `package main

func f(a, b bool) {
	if a {
	}
	if b {
	}
}
`
	nested := `package main

func f(a, b bool) {
	if a {
		if b {
		}
	}
}
`
	_, flatCognitive, _, _ := metrics.ASTComplexity(
		flat, tsgo.GetLanguage(), goBranchKinds, goExitKinds, nil)
	_, nestedCognitive, _, _ := metrics.ASTComplexity(
		nested, tsgo.GetLanguage(), goBranchKinds, goExitKinds, nil)

	assert.Greater(t, nestedCognitive, flatCognitive)
}

func TestASTComplexityBeamClauses(t *testing.T) {
	source := `case x do
  0 -> exit(:bad)
  _ ->
    receive do
      msg -> msg
    end
end
`
	cyclo, _, _, exits := metrics.ASTComplexity(
		source,
		tselixir.GetLanguage(),
		map[string]bool{"stab_clause": true},
		map[string]bool{"call": true},
		nil,
	)

	assert.GreaterOrEqual(t, cyclo, 3.0, "each clause arm is a branch")
	assert.GreaterOrEqual(t, exits, 1, "calls act as exit points")
}
