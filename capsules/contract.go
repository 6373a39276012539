// Package capsules defines the contract every language implementation
// fulfills. A capsule bundles stable language metadata, a cheap match
// predicate, and the parse operation producing a ParsedDocument.
package capsules

import (
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/metrics"
)

// LanguageCapsule is the per-language extension point. Implementations must
// be safe for concurrent use: Parse is called from many goroutines against
// the same capsule once the registry is built.
type LanguageCapsule interface {
	// Info returns stable metadata: id, display name, extensions, aliases.
	Info() core.LanguageInfo

	// Matches is a cheap, I/O-free predicate used to disambiguate when
	// several capsules claim the same extension or during fallback scans.
	Matches(descriptor *core.SourceDescriptor) bool

	// Parse turns source into a document. Errors are returned verbatim to
	// the caller and never retried.
	Parse(pctx *core.ParseContext, descriptor *core.SourceDescriptor, source string, opts core.ParseOptions) (*core.ParsedDocument, error)
}

// MetricsProvider is the optional capability of capsules that carry a
// complexity profile. All bundled capsules implement it.
type MetricsProvider interface {
	Profile() metrics.LanguageProfile
}
