// Package registry maps language hints and file extensions to capsules.
// Registration happens through a Builder; the built ParserRegistry is
// immutable, so lookups and parses need no locking.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oxhq/codescope/capsules"
	"github.com/oxhq/codescope/core"
)

// Builder accumulates capsules before the registry is frozen. Not safe for
// concurrent use; build on one goroutine, share the result.
type Builder struct {
	capsules []capsules.LanguageCapsule
	byName   map[string]capsules.LanguageCapsule
	byExt    map[string][]capsules.LanguageCapsule
	built    bool
}

// NewBuilder returns an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		byName: make(map[string]capsules.LanguageCapsule),
		byExt:  make(map[string][]capsules.LanguageCapsule),
	}
}

// RegisterCapsule adds a capsule. The id and every alias must be unique
// across the builder; extensions may be shared, in which case Matches
// disambiguates at detection time in registration order.
func (b *Builder) RegisterCapsule(c capsules.LanguageCapsule) error {
	if b.built {
		return fmt.Errorf("registry already built")
	}
	if c == nil {
		return fmt.Errorf("capsule cannot be nil")
	}

	info := c.Info()
	id := strings.ToLower(string(info.ID))
	if id == "" {
		return fmt.Errorf("capsule id cannot be empty")
	}
	if _, exists := b.byName[id]; exists {
		return fmt.Errorf("capsule %q already registered", id)
	}

	names := []string{id}
	for _, alias := range info.Aliases {
		alias = strings.ToLower(alias)
		if other, exists := b.byName[alias]; exists {
			return fmt.Errorf("alias %q already taken by %q", alias, other.Info().ID)
		}
		names = append(names, alias)
	}

	for _, name := range names {
		b.byName[name] = c
	}
	for _, ext := range info.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		b.byExt[ext] = append(b.byExt[ext], c)
	}
	b.capsules = append(b.capsules, c)

	return nil
}

// Build freezes the builder into a registry. The builder rejects further
// registrations afterwards.
func (b *Builder) Build() *ParserRegistry {
	b.built = true
	return &ParserRegistry{
		capsules: b.capsules,
		byName:   b.byName,
		byExt:    b.byExt,
	}
}

// ParserRegistry resolves descriptors to capsules and dispatches parsing.
// It is immutable after Build and safe for unsynchronized concurrent reads.
type ParserRegistry struct {
	capsules []capsules.LanguageCapsule
	byName   map[string]capsules.LanguageCapsule
	byExt    map[string][]capsules.LanguageCapsule
}

// DetectLanguage resolves the capsule for a descriptor. Resolution order:
// explicit language hint (id or alias), then the extension candidates in
// registration order taking the first whose Matches accepts the descriptor,
// then a fallback Matches scan over every capsule in registration order.
func (r *ParserRegistry) DetectLanguage(descriptor *core.SourceDescriptor) (capsules.LanguageCapsule, error) {
	if hint := strings.ToLower(descriptor.Language); hint != "" {
		if c, ok := r.byName[hint]; ok {
			return c, nil
		}
	}

	for _, c := range r.byExt[descriptor.Extension()] {
		if c.Matches(descriptor) {
			return c, nil
		}
	}

	for _, c := range r.capsules {
		if c.Matches(descriptor) {
			return c, nil
		}
	}

	return nil, &core.NoMatchingCapsuleError{Path: descriptor.Path}
}

// Parse detects the capsule for descriptor and delegates to it. Capsule
// errors propagate verbatim.
func (r *ParserRegistry) Parse(
	pctx *core.ParseContext,
	descriptor *core.SourceDescriptor,
	source string,
	opts core.ParseOptions,
) (*core.ParsedDocument, error) {
	c, err := r.DetectLanguage(descriptor)
	if err != nil {
		return nil, err
	}
	return c.Parse(pctx, descriptor, source, opts)
}

// Capsule returns the capsule registered under name (id or alias).
func (r *ParserRegistry) Capsule(name string) (capsules.LanguageCapsule, error) {
	c, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, &core.UnknownLanguageError{ID: core.LanguageID(name)}
	}
	return c, nil
}

// Languages lists the registered languages sorted by id.
func (r *ParserRegistry) Languages() []core.LanguageInfo {
	infos := make([]core.LanguageInfo, 0, len(r.capsules))
	for _, c := range r.capsules {
		infos = append(infos, c.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Supports reports whether any capsule claims the descriptor.
func (r *ParserRegistry) Supports(descriptor *core.SourceDescriptor) bool {
	_, err := r.DetectLanguage(descriptor)
	return err == nil
}
