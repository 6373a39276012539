// Package php provides the PHP language capsule.
package php

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
	tsphp "github.com/smacker/go-tree-sitter/php"

	"github.com/oxhq/codescope/capsules/base"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

var (
	operatorPattern   = regexp.MustCompile(`<=>|=>|->|\?\?|\.=|[-+*/%=<>!&|^~?:.]+`)
	identifierPattern = regexp.MustCompile(`\$?[A-Za-z_][A-Za-z0-9_]*`)
)

var keywords = map[string]bool{
	"abstract": true, "and": true, "array": true, "as": true, "break": true,
	"callable": true, "case": true, "catch": true, "class": true,
	"clone": true, "const": true, "continue": true, "declare": true,
	"default": true, "do": true, "echo": true, "else": true, "elseif": true,
	"empty": true, "enum": true, "extends": true, "final": true,
	"finally": true, "fn": true, "for": true, "foreach": true,
	"function": true, "global": true, "if": true, "implements": true,
	"include": true, "instanceof": true, "interface": true, "isset": true,
	"match": true, "namespace": true, "new": true, "or": true,
	"print": true, "private": true, "protected": true, "public": true,
	"readonly": true, "require": true, "return": true, "static": true,
	"switch": true, "throw": true, "trait": true, "try": true,
	"unset": true, "use": true, "var": true, "while": true, "xor": true,
	"yield": true, "true": true, "false": true, "null": true,
}

var branchKinds = map[string]bool{
	"if_statement":                 true,
	"else_if_clause":               true,
	"for_statement":                true,
	"foreach_statement":            true,
	"while_statement":              true,
	"do_statement":                 true,
	"switch_statement":             true,
	"case_statement":               true,
	"match_conditional_expression": true,
	"catch_clause":                 true,
	"conditional_expression":       true,
}

var exitKinds = map[string]bool{
	"return_statement": true,
	"throw_expression": true,
}

type spec struct{}

// New returns the PHP capsule.
func New() *base.Capsule { return base.New(spec{}) }

func (spec) Info() core.LanguageInfo {
	return core.LanguageInfo{
		ID:          "php",
		DisplayName: "PHP",
		Extensions:  []string{".php", ".phtml"},
	}
}

func (spec) Grammar() *sitter.Language { return tsphp.GetLanguage() }

func (spec) SymbolKind(nodeKind string) string {
	switch nodeKind {
	case "function_definition":
		return "function"
	case "method_declaration":
		return "method"
	case "class_declaration", "interface_declaration", "trait_declaration":
		return "class"
	case "enum_declaration":
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
		Grammar:           tsphp.GetLanguage(),
		BranchKinds:       branchKinds,
		ExitKinds:         exitKinds,
		OperatorPattern:   operatorPattern,
		IdentifierPattern: identifierPattern,
		Keywords:          keywords,
		Comments: metrics.CommentStyle{
			LinePrefixes: []string{"//", "#"},
			BlockPairs:   [][2]string{{"/*", "*/"}},
		},
	}
}
