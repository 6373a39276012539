package registry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/codescope/capsules"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/registry"
)

// stubCapsule matches by id/alias hint and by extension, like the real base
// capsule, without needing a grammar.
type stubCapsule struct {
	info    core.LanguageInfo
	matchFn func(*core.SourceDescriptor) bool
	parseFn func() (*core.ParsedDocument, error)
}

func (s *stubCapsule) Info() core.LanguageInfo { return s.info }

func (s *stubCapsule) Matches(d *core.SourceDescriptor) bool {
	if s.matchFn != nil {
		return s.matchFn(d)
	}
	hint := strings.ToLower(d.Language)
	if hint == string(s.info.ID) {
		return true
	}
	for _, alias := range s.info.Aliases {
		if hint == strings.ToLower(alias) {
			return true
		}
	}
	for _, ext := range s.info.Extensions {
		if d.Extension() == ext {
			return true
		}
	}
	return false
}

func (s *stubCapsule) Parse(_ *core.ParseContext, d *core.SourceDescriptor, _ string, _ core.ParseOptions) (*core.ParsedDocument, error) {
	if s.parseFn != nil {
		return s.parseFn()
	}
	doc := core.NewParsedDocument(*d)
	return doc, nil
}

func newStub(id string, exts, aliases []string) *stubCapsule {
	return &stubCapsule{info: core.LanguageInfo{
		ID:          core.LanguageID(id),
		DisplayName: id,
		Extensions:  exts,
		Aliases:     aliases,
	}}
}

func buildRegistry(t *testing.T, caps ...capsules.LanguageCapsule) *registry.ParserRegistry {
	t.Helper()
	b := registry.NewBuilder()
	for _, c := range caps {
		require.NoError(t, b.RegisterCapsule(c))
	}
	return b.Build()
}

func TestRegisterCapsuleValidation(t *testing.T) {
	b := registry.NewBuilder()

	assert.Error(t, b.RegisterCapsule(nil))

	require.NoError(t, b.RegisterCapsule(newStub("go", []string{".go"}, []string{"golang"})))

	err := b.RegisterCapsule(newStub("go", []string{".go2"}, nil))
	assert.ErrorContains(t, err, "already registered")

	err = b.RegisterCapsule(newStub("gopher", nil, []string{"golang"}))
	assert.ErrorContains(t, err, "alias")
}

func TestRegisterAfterBuildFails(t *testing.T) {
	b := registry.NewBuilder()
	require.NoError(t, b.RegisterCapsule(newStub("go", []string{".go"}, nil)))
	_ = b.Build()

	err := b.RegisterCapsule(newStub("rust", []string{".rs"}, nil))
	assert.ErrorContains(t, err, "already built")
}

func TestDetectLanguageHintBeatsExtension(t *testing.T) {
	reg := buildRegistry(t,
		newStub("go", []string{".go"}, []string{"golang"}),
		newStub("python", []string{".py"}, nil),
	)

	desc := core.NewSourceDescriptor("script.go")
	desc.Language = "python"

	c, err := reg.DetectLanguage(&desc)
	require.NoError(t, err)
	assert.Equal(t, core.LanguageID("python"), c.Info().ID)
}

func TestDetectLanguageResolvesAliases(t *testing.T) {
	reg := buildRegistry(t, newStub("go", []string{".go"}, []string{"golang"}))

	desc := core.NewSourceDescriptor("noext")
	desc.Language = "golang"

	c, err := reg.DetectLanguage(&desc)
	require.NoError(t, err)
	assert.Equal(t, core.LanguageID("go"), c.Info().ID)
}

func TestDetectLanguageByExtension(t *testing.T) {
	reg := buildRegistry(t,
		newStub("go", []string{".go"}, nil),
		newStub("python", []string{".py"}, nil),
	)

	desc := core.NewSourceDescriptor("pkg/main.PY") // extension lookup is case-insensitive

	c, err := reg.DetectLanguage(&desc)
	require.NoError(t, err)
	assert.Equal(t, core.LanguageID("python"), c.Info().ID)
}

func TestDetectLanguageSharedExtensionRegistrationOrder(t *testing.T) {
	first := newStub("header-c", []string{".h"}, nil)
	second := newStub("header-cpp", []string{".h"}, nil)

	reg := buildRegistry(t, first, second)

	desc := core.NewSourceDescriptor("util.h")
	c, err := reg.DetectLanguage(&desc)
	require.NoError(t, err)
	assert.Equal(t, core.LanguageID("header-c"), c.Info().ID, "first registered wins when both match")
}

func TestDetectLanguageSharedExtensionMatchesDisambiguates(t *testing.T) {
	first := newStub("header-c", []string{".h"}, nil)
	first.matchFn = func(*core.SourceDescriptor) bool { return false }
	second := newStub("header-cpp", []string{".h"}, nil)

	reg := buildRegistry(t, first, second)

	desc := core.NewSourceDescriptor("util.h")
	c, err := reg.DetectLanguage(&desc)
	require.NoError(t, err)
	assert.Equal(t, core.LanguageID("header-cpp"), c.Info().ID, "non-matching candidates are skipped")
}

func TestDetectLanguageFallbackScan(t *testing.T) {
	shebang := newStub("shell", nil, nil)
	shebang.matchFn = func(d *core.SourceDescriptor) bool {
		return strings.HasSuffix(d.Path, "rc")
	}

	reg := buildRegistry(t, newStub("go", []string{".go"}, nil), shebang)

	desc := core.NewSourceDescriptor("bashrc")
	c, err := reg.DetectLanguage(&desc)
	require.NoError(t, err)
	assert.Equal(t, core.LanguageID("shell"), c.Info().ID)
}

func TestDetectLanguageNoMatch(t *testing.T) {
	reg := buildRegistry(t, newStub("go", []string{".go"}, nil))

	desc := core.NewSourceDescriptor("README.md")
	_, err := reg.DetectLanguage(&desc)

	assert.True(t, core.IsNoMatchingCapsule(err))
	assert.ErrorContains(t, err, "README.md")
}

func TestCapsuleLookup(t *testing.T) {
	reg := buildRegistry(t, newStub("go", []string{".go"}, []string{"golang"}))

	c, err := reg.Capsule("GOLANG")
	require.NoError(t, err)
	assert.Equal(t, core.LanguageID("go"), c.Info().ID)

	_, err = reg.Capsule("cobol")
	var unknown *core.UnknownLanguageError
	assert.ErrorAs(t, err, &unknown)
}

func TestLanguagesSorted(t *testing.T) {
	reg := buildRegistry(t,
		newStub("rust", []string{".rs"}, nil),
		newStub("go", []string{".go"}, nil),
		newStub("python", []string{".py"}, nil),
	)

	infos := reg.Languages()
	require.Len(t, infos, 3)
	assert.Equal(t, core.LanguageID("go"), infos[0].ID)
	assert.Equal(t, core.LanguageID("python"), infos[1].ID)
	assert.Equal(t, core.LanguageID("rust"), infos[2].ID)
}

func TestParseDelegatesVerbatim(t *testing.T) {
	boom := newStub("go", []string{".go"}, nil)
	capErr := &core.CapsuleError{Language: "go", Kind: core.FailureParse, Message: "boom"}
	boom.parseFn = func() (*core.ParsedDocument, error) { return nil, capErr }

	reg := buildRegistry(t, boom)

	desc := core.NewSourceDescriptor("main.go")
	_, err := reg.Parse(&core.ParseContext{}, &desc, "package main", core.DefaultParseOptions())

	assert.Same(t, capErr, err.(*core.CapsuleError))
}
