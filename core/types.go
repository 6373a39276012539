package core

import (
	"path/filepath"
	"strings"
	"time"
)

// LanguageID is the canonical identifier of a language capsule (e.g. "go").
type LanguageID string

func (id LanguageID) String() string { return string(id) }

// LanguageInfo captures stable metadata about a language capsule.
type LanguageInfo struct {
	ID          LanguageID `json:"id"`
	DisplayName string     `json:"display_name"`
	Extensions  []string   `json:"extensions"` // normalized, with leading dot
	Aliases     []string   `json:"aliases,omitempty"`
}

// SourceKind classifies what role a discovered file plays in a workspace.
type SourceKind string

const (
	KindSourceFile    SourceKind = "source_file"
	KindManifest      SourceKind = "manifest"
	KindConfiguration SourceKind = "configuration"
	KindGenerated     SourceKind = "generated"
)

// SourceDescriptor describes a source file before its content is read.
type SourceDescriptor struct {
	Path         string     `json:"path"`
	Language     string     `json:"language,omitempty"` // optional id or alias hint
	Kind         SourceKind `json:"kind"`
	SizeBytes    int64      `json:"size_bytes"`
	LastModified time.Time  `json:"last_modified,omitzero"`
}

// NewSourceDescriptor builds a descriptor for path with the kind classified
// from the filename. Size and mtime are left for the caller to fill in.
func NewSourceDescriptor(path string) SourceDescriptor {
	return SourceDescriptor{
		Path: path,
		Kind: ClassifyKind(path),
	}
}

// Extension returns the lowercased file extension including the dot, or ""
// when the path has none.
func (d *SourceDescriptor) Extension() string {
	return strings.ToLower(filepath.Ext(d.Path))
}

// ClassifyKind derives the source kind from the filename alone.
func ClassifyKind(path string) SourceKind {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".pb.go"),
		strings.HasSuffix(name, "_gen.go"),
		strings.Contains(name, ".generated."):
		return KindGenerated
	case strings.HasSuffix(name, ".lock"), strings.HasSuffix(name, ".toml"):
		return KindManifest
	case strings.HasSuffix(name, ".json"),
		strings.HasSuffix(name, ".yaml"),
		strings.HasSuffix(name, ".yml"):
		return KindConfiguration
	default:
		return KindSourceFile
	}
}

// ParseContext carries workspace-level information into every parse call.
type ParseContext struct {
	Root          string `json:"root"`
	WorkspaceName string `json:"workspace_name,omitempty"`
	VCSHead       string `json:"vcs_head,omitempty"`
}

// ParseOptions tunes a single parse call.
type ParseOptions struct {
	CollectSymbols  bool  `json:"collect_symbols"`
	CollectComments bool  `json:"collect_comments"`
	MaxBytes        int64 `json:"max_bytes,omitempty"` // 0 = parser default
}

// DefaultParseOptions collects everything and defers the size ceiling to the
// parser configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		CollectSymbols:  true,
		CollectComments: true,
	}
}

// DiscoveryOptions controls how the filesystem walk enumerates sources.
type DiscoveryOptions struct {
	FollowSymlinks bool     `json:"follow_symlinks"`
	IncludeHidden  bool     `json:"include_hidden"`
	MaxFileSize    int64    `json:"max_file_size,omitempty"` // bytes, 0 = unlimited
	Include        []string `json:"include,omitempty"`       // glob patterns, ** supported
	Exclude        []string `json:"exclude,omitempty"`
	MaxDepth       int      `json:"max_depth,omitempty"` // 0 = unlimited
	MaxFiles       int      `json:"max_files,omitempty"` // 0 = unlimited
}

// DefaultDiscoveryOptions mirrors the conservative defaults used by the CLI:
// no symlinks, no hidden files, 5 MiB per-file ceiling.
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		MaxFileSize: 5 * 1024 * 1024,
	}
}
