// Package elixir provides the Elixir language capsule. The grammar reports
// every clause of case/cond/receive/fn as a stab_clause, which is what the
// complexity walk counts; exits surface as calls (exit/1, throw/1, raise/1).
package elixir

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
	tselixir "github.com/smacker/go-tree-sitter/elixir"

	"github.com/oxhq/codescope/capsules/base"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

var (
	operatorPattern   = regexp.MustCompile(`\|>|<>|->|=>|\+\+|--|[-+*/=<>!&|^]+`)
	identifierPattern = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_?!]*\b`)
)

var keywords = map[string]bool{
	"after": true, "and": true, "case": true, "catch": true, "cond": true,
	"def": true, "defimpl": true, "defmacro": true, "defmodule": true,
	"defp": true, "defprotocol": true, "defstruct": true, "do": true,
	"else": true, "end": true, "false": true, "fn": true, "for": true,
	"if": true, "import": true, "in": true, "nil": true, "not": true,
	"or": true, "quote": true, "raise": true, "receive": true,
	"require": true, "rescue": true, "true": true, "try": true,
	"unless": true, "unquote": true, "use": true, "when": true, "with": true,
}

var branchKinds = map[string]bool{
	"stab_clause": true,
}

// Calls stand in for exit points: exit/1, throw/1, and raise/1 are all plain
// calls in this grammar and there is no dedicated return node.
var exitKinds = map[string]bool{
	"call": true,
}

type spec struct{}

// New returns the Elixir capsule.
func New() *base.Capsule { return base.New(spec{}) }

func (spec) Info() core.LanguageInfo {
	return core.LanguageInfo{
		ID:          "elixir",
		DisplayName: "Elixir",
		Extensions:  []string{".ex", ".exs"},
		Aliases:     []string{"ex"},
	}
}

func (spec) Grammar() *sitter.Language { return tselixir.GetLanguage() }

func (spec) SymbolKind(nodeKind string) string {
	// Definitions are calls to def/defmodule; without query support in the
	// generic walk they are not distinguishable from ordinary calls.
	return ""
}

func (spec) NodeName(node *sitter.Node, source string) string {
	return base.FirstIdentifier(node, source)
}

func (spec) Profile() metrics.LanguageProfile {
	return metrics.LanguageProfile{
		Grammar:           tselixir.GetLanguage(),
		BranchKinds:       branchKinds,
		ExitKinds:         exitKinds,
		OperatorPattern:   operatorPattern,
		IdentifierPattern: identifierPattern,
		Keywords:          keywords,
		Comments: metrics.CommentStyle{
			LinePrefixes: []string{"#"},
		},
	}
}
