package metrics

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
)

// ASTComplexity parses source with grammar and walks every named node,
// scoring cyclomatic and cognitive complexity from the supplied kind sets:
//
//   - branchKinds add 1 to cyclomatic and 1+depth to cognitive (nesting
//     penalty) and update the max nesting depth;
//   - exitKinds count exit points (a language may list call-expression kinds
//     here when calls act as control-flow boundaries, e.g. BEAM exit/throw);
//   - booleanKinds add a flat 1 to cognitive (short-circuit operators).
//
// Depth tracks AST depth, not only control-structure depth. Cyclomatic is
// floored to 1. When the grammar is missing or the parse fails the result is
// the neutral (1, 0, 0, 0): metrics never abort an analysis run.
func ASTComplexity(
	source string,
	grammar *sitter.Language,
	branchKinds, exitKinds, booleanKinds map[string]bool,
) (cyclomatic, cognitive float64, maxNestingDepth, exitPoints int) {
	if grammar == nil {
		return 1.0, 0.0, 0, 0
	}

	parser := sitter.NewParser()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil || tree == nil {
		return 1.0, 0.0, 0, 0
	}
	defer tree.Close()

	state := complexityState{}
	walkComplexity(tree.RootNode(), 0, &state, branchKinds, exitKinds, booleanKinds)

	if state.cyclomatic < 1 {
		state.cyclomatic = 1
	}
	return float64(state.cyclomatic), float64(state.cognitive), state.maxDepth, state.exits
}

type complexityState struct {
	cyclomatic int64
	cognitive  int64
	maxDepth   int
	exits      int
}

func walkComplexity(
	node *sitter.Node,
	depth int,
	state *complexityState,
	branchKinds, exitKinds, booleanKinds map[string]bool,
) {
	kind := node.Type()

	if branchKinds[kind] {
		state.cyclomatic++
		state.cognitive += int64(1 + depth) // penalize nesting
		if depth+1 > state.maxDepth {
			state.maxDepth = depth + 1
		}
	}
	if exitKinds[kind] {
		state.exits++
	}
	if booleanKinds[kind] {
		state.cognitive++
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child != nil {
			walkComplexity(child, depth+1, state, branchKinds, exitKinds, booleanKinds)
		}
	}
}
