// Package javascript provides the JavaScript language capsule.
package javascript

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
	tsjs "github.com/smacker/go-tree-sitter/javascript"

	"github.com/oxhq/codescope/capsules/base"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

var (
	operatorPattern   = regexp.MustCompile(`=>|\.\.\.|\?\.|[-+*/%=<>!&|^~?:]+`)
	identifierPattern = regexp.MustCompile(`\b[A-Za-z_$][A-Za-z0-9_$]*\b`)
)

var keywords = map[string]bool{
	"async": true, "await": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "debugger": true,
	"default": true, "delete": true, "do": true, "else": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "let": true, "new": true, "null": true, "of": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true, "typeof": true,
	"undefined": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
}

// BranchKinds and friends are shared with the TypeScript capsule, whose
// grammar is a superset using the same statement kind names.
var (
	BranchKinds = map[string]bool{
		"if_statement":       true,
		"for_statement":      true,
		"for_in_statement":   true,
		"while_statement":    true,
		"do_statement":       true,
		"switch_case":        true,
		"switch_default":     true,
		"ternary_expression": true,
		"catch_clause":       true,
	}
	ExitKinds = map[string]bool{
		"return_statement": true,
		"throw_statement":  true,
	}
)

type spec struct{}

// New returns the JavaScript capsule.
func New() *base.Capsule { return base.New(spec{}) }

func (spec) Info() core.LanguageInfo {
	return core.LanguageInfo{
		ID:          "javascript",
		DisplayName: "JavaScript",
		Extensions:  []string{".js", ".jsx", ".mjs", ".cjs"},
		Aliases:     []string{"js", "node"},
	}
}

func (spec) Grammar() *sitter.Language { return tsjs.GetLanguage() }

func (spec) SymbolKind(nodeKind string) string { return SymbolKind(nodeKind) }

// SymbolKind is shared with the TypeScript capsule.
func SymbolKind(nodeKind string) string {
	switch nodeKind {
	case "function_declaration", "generator_function_declaration":
		return "function"
	case "method_definition":
		return "method"
	case "class_declaration":
		return "class"
	default:
		return ""
	}
}

func (spec) NodeName(node *sitter.Node, source string) string {
	return base.FirstIdentifier(node, source)
}

func (spec) Profile() metrics.LanguageProfile {
	return metrics.LanguageProfile{
		Grammar:           tsjs.GetLanguage(),
		BranchKinds:       BranchKinds,
		ExitKinds:         ExitKinds,
		OperatorPattern:   operatorPattern,
		IdentifierPattern: identifierPattern,
		Keywords:          keywords,
		Comments: metrics.CommentStyle{
			LinePrefixes: []string{"//"},
			BlockPairs:   [][2]string{{"/*", "*/"}},
		},
	}
}

// Operators and Identifiers expose the lexical patterns for reuse by the
// TypeScript capsule.
func Operators() *regexp.Regexp   { return operatorPattern }
func Identifiers() *regexp.Regexp { return identifierPattern }

// Keywords returns the reserved-word set, extended copies allowed.
func Keywords() map[string]bool {
	out := make(map[string]bool, len(keywords))
	for k := range keywords {
		out[k] = true
	}
	return out
}
