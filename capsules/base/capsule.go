// Package base provides the shared tree-sitter capsule. Language packages
// supply a Spec (grammar, node-kind mapping, metrics profile); all parsing,
// extraction, and diagnostics logic lives here.
package base

import (
	"context"
	"fmt"
	"strings"
	"time"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

// Version is recorded in every document's metadata.
const Version = "1.0.0"

// Spec is the language-specific configuration a capsule is built from.
type Spec interface {
	Info() core.LanguageInfo

	// Grammar returns the tree-sitter language, or nil when unavailable.
	Grammar() *sitter.Language

	// SymbolKind maps a named node kind to a document symbol kind
	// ("function", "method", "class", "enum", ...). Empty string means the
	// node is not a symbol.
	SymbolKind(nodeKind string) string

	// NodeName extracts the name of a definition node, or "" if anonymous.
	NodeName(node *sitter.Node, source string) string

	// Profile supplies the declarative metrics configuration.
	Profile() metrics.LanguageProfile
}

// Capsule is the shared LanguageCapsule implementation. It holds no mutable
// state; a fresh tree-sitter parser is created per Parse call.
type Capsule struct {
	spec Spec
}

// New wraps a language Spec into a capsule.
func New(spec Spec) *Capsule {
	return &Capsule{spec: spec}
}

// Info returns the spec's stable metadata.
func (c *Capsule) Info() core.LanguageInfo {
	return c.spec.Info()
}

// Profile exposes the spec's metrics configuration.
func (c *Capsule) Profile() metrics.LanguageProfile {
	return c.spec.Profile()
}

// Matches accepts descriptors whose hint names this language (id or alias)
// or whose extension is one this capsule registered.
func (c *Capsule) Matches(descriptor *core.SourceDescriptor) bool {
	info := c.spec.Info()

	if hint := strings.ToLower(descriptor.Language); hint != "" {
		if hint == strings.ToLower(string(info.ID)) {
			return true
		}
		for _, alias := range info.Aliases {
			if hint == strings.ToLower(alias) {
				return true
			}
		}
	}

	ext := descriptor.Extension()
	for _, candidate := range info.Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// Parse builds a ParsedDocument from source. Symbol and comment collection
// follow opts; diagnostics report tree-sitter ERROR nodes with positions.
func (c *Capsule) Parse(
	pctx *core.ParseContext,
	descriptor *core.SourceDescriptor,
	source string,
	opts core.ParseOptions,
) (*core.ParsedDocument, error) {
	info := c.spec.Info()
	grammar := c.spec.Grammar()
	if grammar == nil {
		return nil, &core.CapsuleError{
			Language: info.ID,
			Kind:     core.FailureUnsupported,
			Message:  "grammar unavailable",
		}
	}

	start := time.Now()

	parser := sitter.NewParser()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil || tree == nil {
		msg := "parser returned no tree"
		if err != nil {
			msg = err.Error()
		}
		return nil, &core.CapsuleError{
			Language: info.ID,
			Kind:     core.FailureTreeSitter,
			Message:  msg,
		}
	}
	defer tree.Close()

	doc := core.NewParsedDocument(*descriptor)
	doc.Metadata.ParserVersion = Version
	if pctx != nil {
		doc.Metadata.Additional = map[string]any{
			"workspace": pctx.WorkspaceName,
			"root":      pctx.Root,
		}
	}

	ext := extractor{
		spec:   c.spec,
		source: source,
		opts:   opts,
		doc:    doc,
	}
	ext.walk(tree.RootNode())

	doc.Stats = core.ParserStats{
		ByteLength:  len(source),
		TotalNodes:  ext.totalNodes,
		TotalTokens: ext.totalTokens,
		DurationMs:  time.Since(start).Milliseconds(),
	}

	return doc, nil
}

// extractor accumulates document contents during one tree walk.
type extractor struct {
	spec   Spec
	source string
	opts   core.ParseOptions
	doc    *core.ParsedDocument

	totalNodes  int
	totalTokens int
}

func (e *extractor) walk(node *sitter.Node) {
	if node.IsNamed() {
		e.totalNodes++
		if node.ChildCount() == 0 {
			e.totalTokens++
		}
		e.visit(node)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil {
			e.walk(child)
		}
	}
}

func (e *extractor) visit(node *sitter.Node) {
	kind := node.Type()

	if kind == "ERROR" {
		e.doc.Diagnostics = append(e.doc.Diagnostics, fmt.Sprintf(
			"syntax error at line %d, column %d",
			node.StartPoint().Row+1,
			node.StartPoint().Column+1,
		))
		return
	}

	if e.opts.CollectComments && kind == "comment" {
		e.doc.Docstrings = append(e.doc.Docstrings, core.Docstring{
			Kind:  "comment",
			Value: e.slice(node),
			Range: nodeRange(node),
		})
		return
	}

	if !e.opts.CollectSymbols {
		return
	}

	symbolKind := e.spec.SymbolKind(kind)
	if symbolKind == "" {
		return
	}

	name := e.spec.NodeName(node, e.source)
	if name == "" {
		name = "anonymous"
	}

	e.doc.Symbols = append(e.doc.Symbols, core.Symbol{
		Name:  name,
		Kind:  symbolKind,
		Range: nodeRange(node),
	})

	switch symbolKind {
	case "class":
		e.doc.Classes = append(e.doc.Classes, core.Class{
			Name:  name,
			Range: nodeRange(node),
		})
	case "enum":
		e.doc.Enums = append(e.doc.Enums, core.Enum{
			Name:     name,
			Variants: e.enumVariants(node),
			Range:    nodeRange(node),
		})
	}
}

// enumVariants collects the named identifier-like children of an enum body.
func (e *extractor) enumVariants(node *sitter.Node) []core.EnumVariant {
	var variants []core.EnumVariant

	var collect func(n *sitter.Node)
	collect = func(n *sitter.Node) {
		kind := n.Type()
		if strings.Contains(kind, "enum_constant") ||
			strings.Contains(kind, "enum_assignment") ||
			kind == "enum_member" || kind == "enum_variant" {
			name := e.spec.NodeName(n, e.source)
			if name != "" {
				variants = append(variants, core.EnumVariant{
					Name:  name,
					Range: nodeRange(n),
				})
			}
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if child := n.NamedChild(i); child != nil {
				collect(child)
			}
		}
	}
	collect(node)

	return variants
}

func (e *extractor) slice(node *sitter.Node) string {
	start, end := node.StartByte(), node.EndByte()
	if int(end) > len(e.source) {
		end = uint32(len(e.source))
	}
	if start > end {
		return ""
	}
	return e.source[start:end]
}

func nodeRange(node *sitter.Node) *core.Range {
	return &core.Range{Start: node.StartByte(), End: node.EndByte()}
}

// FirstIdentifier returns the text of the node's "name" field, or of its
// first identifier-ish child. Shared fallback for Spec.NodeName.
func FirstIdentifier(node *sitter.Node, source string) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return sliceSource(source, nameNode)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier", "type_identifier", "field_identifier", "constant", "alias":
			return sliceSource(source, child)
		}
	}
	return ""
}

func sliceSource(source string, node *sitter.Node) string {
	start, end := int(node.StartByte()), int(node.EndByte())
	if end > len(source) || start > end {
		return ""
	}
	return source[start:end]
}
