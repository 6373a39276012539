// Package python provides the Python language capsule.
package python

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"

	"github.com/oxhq/codescope/capsules/base"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

var (
	operatorPattern   = regexp.MustCompile(`\*\*|//|[-+*/%=<>!&|^~@]+`)
	identifierPattern = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

var keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true, "elif": true,
	"else": true, "except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true,
	"yield": true, "match": true, "case": true,
}

var branchKinds = map[string]bool{
	"if_statement":           true,
	"elif_clause":            true,
	"for_statement":          true,
	"while_statement":        true,
	"except_clause":          true,
	"conditional_expression": true,
	"case_clause":            true,
}

var exitKinds = map[string]bool{
	"return_statement": true,
	"raise_statement":  true,
}

var booleanKinds = map[string]bool{
	"boolean_operator": true,
}

type spec struct{}

// New returns the Python capsule.
func New() *base.Capsule { return base.New(spec{}) }

func (spec) Info() core.LanguageInfo {
	return core.LanguageInfo{
		ID:          "python",
		DisplayName: "Python",
		Extensions:  []string{".py", ".pyi"},
		Aliases:     []string{"py", "python3"},
	}
}

func (spec) Grammar() *sitter.Language { return tspython.GetLanguage() }

func (spec) SymbolKind(nodeKind string) string {
	switch nodeKind {
	case "function_definition":
		return "function"
	case "class_definition":
		return "class"
	default:
		return ""
	}
}

func (spec) NodeName(node *sitter.Node, source string) string {
	name := base.FirstIdentifier(node, source)
	// Decorated definitions report the decorator text first.
	return strings.TrimPrefix(name, "@")
}

func (spec) Profile() metrics.LanguageProfile {
	return metrics.LanguageProfile{
		Grammar:           tspython.GetLanguage(),
		BranchKinds:       branchKinds,
		ExitKinds:         exitKinds,
		BooleanKinds:      booleanKinds,
		OperatorPattern:   operatorPattern,
		IdentifierPattern: identifierPattern,
		Keywords:          keywords,
		Comments: metrics.CommentStyle{
			LinePrefixes: []string{"#"},
		},
	}
}
