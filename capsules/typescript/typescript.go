// Package typescript provides the TypeScript language capsule. The grammar
// is a superset of JavaScript; branch and exit kinds are shared with the
// javascript capsule.
package typescript

import (
	sitter "github.com/smacker/go-tree-sitter"
	tsts "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/oxhq/codescope/capsules/base"
	"github.com/oxhq/codescope/capsules/javascript"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

var keywords = extendedKeywords()

func extendedKeywords() map[string]bool {
	kw := javascript.Keywords()
	for _, k := range []string{
		"abstract", "any", "as", "declare", "enum", "implements",
		"interface", "is", "keyof", "namespace", "never", "number",
		"readonly", "string", "type", "unknown",
	} {
		kw[k] = true
	}
	return kw
}

type spec struct{}

// New returns the TypeScript capsule.
func New() *base.Capsule { return base.New(spec{}) }

func (spec) Info() core.LanguageInfo {
	return core.LanguageInfo{
		ID:          "typescript",
		DisplayName: "TypeScript",
		Extensions:  []string{".ts", ".tsx"},
		Aliases:     []string{"ts"},
	}
}

func (spec) Grammar() *sitter.Language { return tsts.GetLanguage() }

func (spec) SymbolKind(nodeKind string) string {
	switch nodeKind {
	case "interface_declaration":
		return "class"
	case "enum_declaration":
		return "enum"
	default:
		return javascript.SymbolKind(nodeKind)
	}
}

func (spec) NodeName(node *sitter.Node, source string) string {
	return base.FirstIdentifier(node, source)
}

func (spec) Profile() metrics.LanguageProfile {
	return metrics.LanguageProfile{
		Grammar:           tsts.GetLanguage(),
		BranchKinds:       javascript.BranchKinds,
		ExitKinds:         javascript.ExitKinds,
		OperatorPattern:   javascript.Operators(),
		IdentifierPattern: javascript.Identifiers(),
		Keywords:          keywords,
		Comments: metrics.CommentStyle{
			LinePrefixes: []string{"//"},
			BlockPairs:   [][2]string{{"/*", "*/"}},
		},
	}
}
