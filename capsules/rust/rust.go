// Package rust provides the Rust language capsule.
package rust

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
	tsrust "github.com/smacker/go-tree-sitter/rust"

	"github.com/oxhq/codescope/capsules/base"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

var (
	operatorPattern   = regexp.MustCompile(`->|=>|::|\.\.=?|[-+*/%=<>!&|^?]+`)
	identifierPattern = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true,
	"unsafe": true, "use": true, "where": true, "while": true,
}

var branchKinds = map[string]bool{
	"if_expression":    true,
	"match_expression": true,
	"match_arm":        true,
	"while_expression": true,
	"loop_expression":  true,
	"for_expression":   true,
}

var exitKinds = map[string]bool{
	"return_expression": true,
}

type spec struct{}

// New returns the Rust capsule.
func New() *base.Capsule { return base.New(spec{}) }

func (spec) Info() core.LanguageInfo {
	return core.LanguageInfo{
		ID:          "rust",
		DisplayName: "Rust",
		Extensions:  []string{".rs"},
		Aliases:     []string{"rs"},
	}
}

func (spec) Grammar() *sitter.Language { return tsrust.GetLanguage() }

func (spec) SymbolKind(nodeKind string) string {
	switch nodeKind {
	case "function_item":
		return "function"
	case "struct_item", "trait_item", "impl_item":
		return "class"
	case "enum_item":
		return "enum"
	default:
		return ""
	}
}

func (spec) NodeName(node *sitter.Node, source string) string {
	return base.FirstIdentifier(node, source)
}

func (spec) Profile() metrics.LanguageProfile {
	return metrics.LanguageProfile{
		Grammar:           tsrust.GetLanguage(),
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
