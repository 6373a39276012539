// Package parser exposes the high-level parsing entry points: single file,
// descriptor batch, and directory tree. Language resolution is delegated to
// the registry; filesystem access goes through a small seam so callers can
// substitute fakes.
package parser

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/registry"
)

// DefaultMaxFileSize bounds how much source a single parse may read.
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

// FileSystem abstracts the two filesystem operations the parser needs. The
// size check uses Stat so oversized files are rejected before any content
// is read.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

type osFS struct{}

func (osFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }
func (osFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }

// UniversalParser parses any source the registry has a capsule for. The
// zero-cost value semantics make it cheap to copy; all state lives in the
// immutable registry.
type UniversalParser struct {
	registry *registry.ParserRegistry
	fsys     FileSystem
	maxBytes int64
}

// Option configures a UniversalParser.
type Option func(*UniversalParser)

// WithFileSystem substitutes the filesystem seam, mainly for tests.
func WithFileSystem(fsys FileSystem) Option {
	return func(p *UniversalParser) { p.fsys = fsys }
}

// WithMaxFileSize overrides the default per-file size ceiling. Zero or
// negative keeps the default.
func WithMaxFileSize(maxBytes int64) Option {
	return func(p *UniversalParser) {
		if maxBytes > 0 {
			p.maxBytes = maxBytes
		}
	}
}

// New creates a parser backed by reg.
func New(reg *registry.ParserRegistry, opts ...Option) *UniversalParser {
	p := &UniversalParser{
		registry: reg,
		fsys:     osFS{},
		maxBytes: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the registry this parser dispatches through.
func (p *UniversalParser) Registry() *registry.ParserRegistry { return p.registry }

// ParseFile stats, size-checks, and parses a single file. The descriptor is
// built from the filename; langHint, when non-empty, short-circuits
// extension detection.
func (p *UniversalParser) ParseFile(
	pctx *core.ParseContext,
	path string,
	langHint string,
	opts core.ParseOptions,
) (*core.ParsedDocument, error) {
	info, err := p.fsys.Stat(path)
	if err != nil {
		return nil, &core.IOError{Path: path, Err: err}
	}

	desc := core.NewSourceDescriptor(path)
	desc.Language = langHint
	desc.SizeBytes = info.Size()
	desc.LastModified = info.ModTime().UTC()

	return p.ParseDescriptor(pctx, &desc, opts)
}

// ParseDescriptor reads and parses the file named by descriptor. Oversized
// files fail before their content is read; invalid UTF-8 fails before the
// capsule sees the bytes.
func (p *UniversalParser) ParseDescriptor(
	pctx *core.ParseContext,
	descriptor *core.SourceDescriptor,
	opts core.ParseOptions,
) (*core.ParsedDocument, error) {
	limit := p.maxBytes
	if opts.MaxBytes > 0 {
		limit = opts.MaxBytes
	}
	if limit > 0 && descriptor.SizeBytes > limit {
		return nil, &core.FileTooLargeError{
			Path: descriptor.Path,
			Size: descriptor.SizeBytes,
			Max:  limit,
		}
	}

	content, err := p.fsys.ReadFile(descriptor.Path)
	if err != nil {
		return nil, &core.IOError{Path: descriptor.Path, Err: err}
	}
	if limit > 0 && int64(len(content)) > limit {
		// The file grew between stat and read.
		return nil, &core.FileTooLargeError{
			Path: descriptor.Path,
			Size: int64(len(content)),
			Max:  limit,
		}
	}
	if !utf8.Valid(content) {
		return nil, &core.CapsuleError{
			Kind:    core.FailureUTF8,
			Message: "source is not valid utf-8: " + descriptor.Path,
		}
	}

	return p.registry.Parse(pctx, descriptor, string(content), opts)
}

// ParseDescriptors parses a batch sequentially, failing on the first error.
// Callers that want skip semantics filter descriptors beforehand.
func (p *UniversalParser) ParseDescriptors(
	pctx *core.ParseContext,
	descriptors []core.SourceDescriptor,
	opts core.ParseOptions,
) ([]*core.ParsedDocument, error) {
	docs := make([]*core.ParsedDocument, 0, len(descriptors))
	for i := range descriptors {
		doc, err := p.ParseDescriptor(pctx, &descriptors[i], opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ParseTree discovers sources under root and parses every descriptor the
// registry supports. Unsupported files are skipped with a debug log rather
// than failing the run.
func (p *UniversalParser) ParseTree(
	ctx context.Context,
	pctx *core.ParseContext,
	root string,
	discovery core.DiscoveryOptions,
	opts core.ParseOptions,
) ([]*core.ParsedDocument, error) {
	walker := core.NewWalker()
	descriptors, err := walker.DiscoverSources(ctx, root, discovery)
	if err != nil {
		return nil, err
	}

	supported := descriptors[:0]
	for i := range descriptors {
		if p.registry.Supports(&descriptors[i]) {
			supported = append(supported, descriptors[i])
		} else {
			slog.Debug("skipping unsupported file", "path", descriptors[i].Path)
		}
	}

	return p.ParseDescriptors(pctx, supported, opts)
}
