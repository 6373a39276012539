// Package golang provides the Go language capsule.
package golang

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
	tsgo "github.com/smacker/go-tree-sitter/golang"

	"github.com/oxhq/codescope/capsules/base"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

var (
	operatorPattern   = regexp.MustCompile(`:=|<-|\.\.\.|[-+*/%=<>!&|^]+`)
	identifierPattern = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

var keywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true,
	"for": true, "func": true, "go": true, "goto": true, "if": true,
	"import": true, "interface": true, "map": true, "package": true,
	"range": true, "return": true, "select": true, "struct": true,
	"switch": true, "type": true, "var": true,
}

var branchKinds = map[string]bool{
	"if_statement":                true,
	"for_statement":               true,
	"expression_switch_statement": true,
	"type_switch_statement":       true,
	"select_statement":            true,
	"expression_case":             true,
	"type_case":                   true,
	"default_case":                true,
	"communication_case":          true,
}

var exitKinds = map[string]bool{
	"return_statement": true,
}

type spec struct{}

// New returns the Go capsule.
func New() *base.Capsule { return base.New(spec{}) }

func (spec) Info() core.LanguageInfo {
	return core.LanguageInfo{
		ID:          "go",
		DisplayName: "Go",
		Extensions:  []string{".go"},
		Aliases:     []string{"golang"},
	}
}

func (spec) Grammar() *sitter.Language { return tsgo.GetLanguage() }

func (spec) SymbolKind(nodeKind string) string {
	switch nodeKind {
	case "function_declaration":
		return "function"
	case "method_declaration":
		return "method"
	case "type_spec":
		return "class"
	case "const_spec":
		return "constant"
	default:
		return ""
	}
}

func (spec) NodeName(node *sitter.Node, source string) string {
	return base.FirstIdentifier(node, source)
}

func (spec) Profile() metrics.LanguageProfile {
	return metrics.LanguageProfile{
		Grammar:           tsgo.GetLanguage(),
		BranchKinds:       branchKinds,
		ExitKinds:         exitKinds,
		OperatorPattern:   operatorPattern,
		IdentifierPattern: identifierPattern,
		Keywords:          keywords,
		Comments: metrics.CommentStyle{
			LinePrefixes: []string{"//"},
			BlockPairs:   [][2]string{{"/*", "*/"}},
		},
	}
}
