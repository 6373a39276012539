// Package catalog wires the built-in language capsules into a registry.
// Importing this package is the only place the individual language packages
// are linked together; everything else depends on the registry interface.
package catalog

import (
	"fmt"

	"github.com/oxhq/codescope/capsules"
	"github.com/oxhq/codescope/capsules/elixir"
	"github.com/oxhq/codescope/capsules/golang"
	"github.com/oxhq/codescope/capsules/javascript"
	"github.com/oxhq/codescope/capsules/php"
	"github.com/oxhq/codescope/capsules/python"
	"github.com/oxhq/codescope/capsules/rust"
	"github.com/oxhq/codescope/capsules/typescript"
	"github.com/oxhq/codescope/registry"
)

// BuiltinCapsules returns a fresh slice of every bundled language capsule.
func BuiltinCapsules() []capsules.LanguageCapsule {
	return []capsules.LanguageCapsule{
		golang.New(),
		python.New(),
		javascript.New(),
		typescript.New(),
		php.New(),
		rust.New(),
		elixir.New(),
	}
}

// DefaultRegistry builds a registry holding every bundled capsule.
func DefaultRegistry() (*registry.ParserRegistry, error) {
	b := registry.NewBuilder()
	for _, c := range BuiltinCapsules() {
		if err := b.RegisterCapsule(c); err != nil {
			return nil, fmt.Errorf("registering %s: %w", c.Info().ID, err)
		}
	}
	return b.Build(), nil
}
