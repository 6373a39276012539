package core

import "time"

// ParsedDocument is the result of parsing one source file. It is created per
// call and exclusively owned by the caller; capsules never retain it.
type ParsedDocument struct {
	Descriptor  SourceDescriptor `json:"descriptor"`
	Metadata    DocumentMetadata `json:"metadata"`
	Symbols     []Symbol         `json:"symbols"`
	Classes     []Class          `json:"classes"`
	Enums       []Enum           `json:"enums"`
	Docstrings  []Docstring      `json:"docstrings"`
	Stats       ParserStats      `json:"stats"`
	Diagnostics []string         `json:"diagnostics"`
}

// NewParsedDocument returns an empty document for the given descriptor.
func NewParsedDocument(descriptor SourceDescriptor) *ParsedDocument {
	return &ParsedDocument{
		Descriptor: descriptor,
		Metadata: DocumentMetadata{
			AnalyzedAt: time.Now().UTC(),
		},
		Symbols:     []Symbol{},
		Classes:     []Class{},
		Enums:       []Enum{},
		Docstrings:  []Docstring{},
		Diagnostics: []string{},
	}
}

// DocumentMetadata is additional information recorded by the capsule.
type DocumentMetadata struct {
	ParserVersion string         `json:"parser_version,omitempty"`
	AnalyzedAt    time.Time      `json:"analyzed_at"`
	Additional    map[string]any `json:"additional,omitempty"`
}

// ParserStats summarizes the work a single parse performed.
type ParserStats struct {
	ByteLength  int   `json:"byte_length"`
	TotalNodes  int   `json:"total_nodes"`
	TotalTokens int   `json:"total_tokens"`
	DurationMs  int64 `json:"duration_ms"`
}

// Range is a half-open [start, end) byte range into the source.
type Range struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// Symbol is the minimal cross-language representation of a named definition.
type Symbol struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"` // function, method, class, enum, ...
	Range     *Range `json:"range,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// Class summarizes a class-like definition (class, struct, interface).
type Class struct {
	Name      string   `json:"name"`
	Bases     []string `json:"bases,omitempty"`
	Docstring string   `json:"docstring,omitempty"`
	Range     *Range   `json:"range,omitempty"`
}

// Enum summarizes an enumeration-like definition.
type Enum struct {
	Name     string        `json:"name"`
	Variants []EnumVariant `json:"variants,omitempty"`
	Range    *Range        `json:"range,omitempty"`
}

// EnumVariant is an individual member of an Enum.
type EnumVariant struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Range *Range `json:"range,omitempty"`
}

// Docstring captures a comment or documentation string attached to the file.
type Docstring struct {
	Owner string `json:"owner,omitempty"`
	Kind  string `json:"kind"` // comment, docstring
	Value string `json:"value"`
	Range *Range `json:"range,omitempty"`
}
