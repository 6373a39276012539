package parser_test

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/codescope/capsules/catalog"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/parser"
	"github.com/oxhq/codescope/registry"
)

// fakeFS serves in-memory files and counts ReadFile calls so tests can prove
// the size check happens before any content is read.
type fakeFS struct {
	files map[string][]byte
	reads int
}

type fakeInfo struct {
	name string
	size int64
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return i.size }
func (i fakeInfo) Mode() fs.FileMode  { return 0o644 }
func (i fakeInfo) ModTime() time.Time { return time.Unix(0, 0) }
func (i fakeInfo) IsDir() bool        { return false }
func (i fakeInfo) Sys() any           { return nil }

func (f *fakeFS) Stat(path string) (fs.FileInfo, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return fakeInfo{name: path, size: int64(len(content))}, nil
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	f.reads++
	content, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return content, nil
}

func defaultRegistry(t *testing.T) *registry.ParserRegistry {
	t.Helper()
	reg, err := catalog.DefaultRegistry()
	require.NoError(t, err)
	return reg
}

func TestParseFileGo(t *testing.T) {
	fsys := &fakeFS{files: map[string][]byte{
		"main.go": []byte("package main\n\n// entry\nfunc main() {}\n"),
	}}
	p := parser.New(defaultRegistry(t), parser.WithFileSystem(fsys))

	doc, err := p.ParseFile(&core.ParseContext{Root: "."}, "main.go", "", core.DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, "main.go", doc.Descriptor.Path)
	assert.Greater(t, doc.Stats.TotalNodes, 0)
	require.Len(t, doc.Symbols, 1)
	assert.Equal(t, "main", doc.Symbols[0].Name)
	assert.Equal(t, "function", doc.Symbols[0].Kind)
	require.Len(t, doc.Docstrings, 1)
	assert.Equal(t, "// entry", doc.Docstrings[0].Value)
}

func TestParseFileZeroBytes(t *testing.T) {
	fsys := &fakeFS{files: map[string][]byte{"empty.go": {}}}
	p := parser.New(defaultRegistry(t), parser.WithFileSystem(fsys))

	doc, err := p.ParseFile(&core.ParseContext{}, "empty.go", "", core.DefaultParseOptions())
	require.NoError(t, err, "an empty file is a valid parse")

	assert.Zero(t, doc.Stats.ByteLength)
	assert.Empty(t, doc.Symbols)
	assert.Empty(t, doc.Diagnostics)
}

func TestParseFileTooLargeSkipsRead(t *testing.T) {
	fsys := &fakeFS{files: map[string][]byte{
		"big.go": []byte("package main\n// padding padding padding\n"),
	}}
	p := parser.New(defaultRegistry(t),
		parser.WithFileSystem(fsys),
		parser.WithMaxFileSize(10),
	)

	_, err := p.ParseFile(&core.ParseContext{}, "big.go", "", core.DefaultParseOptions())

	assert.True(t, core.IsFileTooLarge(err))
	assert.Zero(t, fsys.reads, "oversized files must be rejected before reading")

	var tooLarge *core.FileTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "big.go", tooLarge.Path)
	assert.Equal(t, int64(10), tooLarge.Max)
}

func TestParseDescriptorMaxBytesOverride(t *testing.T) {
	fsys := &fakeFS{files: map[string][]byte{
		"main.go": []byte("package main\n"),
	}}
	p := parser.New(defaultRegistry(t), parser.WithFileSystem(fsys))

	desc := core.NewSourceDescriptor("main.go")
	desc.SizeBytes = 13

	opts := core.DefaultParseOptions()
	opts.MaxBytes = 4

	_, err := p.ParseDescriptor(&core.ParseContext{}, &desc, opts)
	assert.True(t, core.IsFileTooLarge(err))
}

func TestParseFileMissing(t *testing.T) {
	p := parser.New(defaultRegistry(t), parser.WithFileSystem(&fakeFS{files: map[string][]byte{}}))

	_, err := p.ParseFile(&core.ParseContext{}, "gone.go", "", core.DefaultParseOptions())

	var ioErr *core.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "gone.go", ioErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseDescriptorInvalidUTF8(t *testing.T) {
	fsys := &fakeFS{files: map[string][]byte{
		"bad.go": {0xff, 0xfe, 0xfd},
	}}
	p := parser.New(defaultRegistry(t), parser.WithFileSystem(fsys))

	desc := core.NewSourceDescriptor("bad.go")
	desc.SizeBytes = 3

	_, err := p.ParseDescriptor(&core.ParseContext{}, &desc, core.DefaultParseOptions())

	var capErr *core.CapsuleError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, core.FailureUTF8, capErr.Kind)
}

func TestParseFileHintOverridesExtension(t *testing.T) {
	fsys := &fakeFS{files: map[string][]byte{
		"script.txt": []byte("def greet():\n    return 1\n"),
	}}
	p := parser.New(defaultRegistry(t), parser.WithFileSystem(fsys))

	doc, err := p.ParseFile(&core.ParseContext{}, "script.txt", "python", core.DefaultParseOptions())
	require.NoError(t, err)

	require.Len(t, doc.Symbols, 1)
	assert.Equal(t, "greet", doc.Symbols[0].Name)
}

func TestParseDescriptorsFailFast(t *testing.T) {
	fsys := &fakeFS{files: map[string][]byte{
		"a.go": []byte("package a\n"),
		"c.go": []byte("package c\n"),
	}}
	p := parser.New(defaultRegistry(t), parser.WithFileSystem(fsys))

	descs := []core.SourceDescriptor{
		core.NewSourceDescriptor("a.go"),
		core.NewSourceDescriptor("b.go"), // missing
		core.NewSourceDescriptor("c.go"),
	}

	docs, err := p.ParseDescriptors(&core.ParseContext{}, descs, core.DefaultParseOptions())

	assert.Nil(t, docs)
	var ioErr *core.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "b.go", ioErr.Path)
	assert.Equal(t, 2, fsys.reads, "stops at the first failure")
}

func TestParseTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/main.go", []byte("package main\nfunc main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(dir+"/util.py", []byte("def util():\n    pass\n"), 0o644))
	require.NoError(t, os.WriteFile(dir+"/notes.txt", []byte("not source\n"), 0o644))

	p := parser.New(defaultRegistry(t))

	docs, err := p.ParseTree(
		context.Background(),
		&core.ParseContext{Root: dir},
		dir,
		core.DefaultDiscoveryOptions(),
		core.DefaultParseOptions(),
	)
	require.NoError(t, err)

	require.Len(t, docs, 2, "unsupported files are skipped, not fatal")
	assert.Equal(t, dir+"/main.go", docs[0].Descriptor.Path)
	assert.Equal(t, dir+"/util.py", docs[1].Descriptor.Path)
}
