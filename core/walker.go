package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker performs parallel filesystem traversal producing SourceDescriptors.
// The worker pool is an internal detail; the exported API is synchronous.
type Walker struct {
	workers    int
	bufferSize int
}

// NewWalker creates a walker sized for I/O bound work.
func NewWalker() *Walker {
	return &Walker{
		workers:    runtime.NumCPU() * 2,
		bufferSize: 1000,
	}
}

// DiscoverSources enumerates files under root according to opts and returns
// their descriptors sorted by path. I/O errors on individual entries are
// logged and skipped; only a bad root is a hard error.
func (w *Walker) DiscoverSources(ctx context.Context, root string, opts DiscoveryOptions) ([]SourceDescriptor, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &IOError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("discovery root %s is not a directory", root)
	}

	paths := make(chan string, w.bufferSize)
	results := make(chan SourceDescriptor, w.bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go w.statWorker(ctx, paths, results, opts, &wg)
	}

	go func() {
		defer close(paths)
		processed := 0
		var visited map[string]struct{}
		if opts.FollowSymlinks {
			visited = make(map[string]struct{})
			if resolved, err := filepath.EvalSymlinks(root); err == nil {
				visited[resolved] = struct{}{}
			} else {
				visited[root] = struct{}{}
			}
		}
		w.scanDirectory(ctx, root, opts, paths, 0, &processed, visited)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var descriptors []SourceDescriptor
	for desc := range results {
		descriptors = append(descriptors, desc)
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Path < descriptors[j].Path
	})
	return descriptors, ctx.Err()
}

// statWorker turns candidate paths into descriptors, dropping entries whose
// metadata cannot be read or that exceed the size ceiling.
func (w *Walker) statWorker(
	ctx context.Context,
	paths <-chan string,
	results chan<- SourceDescriptor,
	opts DiscoveryOptions,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-paths:
			if !ok {
				return
			}

			info, err := os.Stat(path)
			if err != nil {
				slog.Warn("skipping entry during discovery", "path", path, "error", err)
				continue
			}
			if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
				continue
			}

			desc := NewSourceDescriptor(path)
			desc.SizeBytes = info.Size()
			desc.LastModified = info.ModTime().UTC()

			select {
			case <-ctx.Done():
				return
			case results <- desc:
			}
		}
	}
}

// scanDirectory recursively discovers files matching the include/exclude
// patterns, honoring depth, hidden-file, and symlink policies.
func (w *Walker) scanDirectory(
	ctx context.Context,
	dirPath string,
	opts DiscoveryOptions,
	paths chan<- string,
	depth int,
	processed *int,
	visited map[string]struct{},
) {
	if opts.MaxFiles > 0 && *processed >= opts.MaxFiles {
		return
	}
	select {
	case <-ctx.Done():
		return
	default:
	}

	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		slog.Warn("skipping unreadable directory", "path", dirPath, "error", err)
		return
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !opts.IncludeHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())

		if isExcluded(fullPath, opts.Exclude) {
			continue
		}

		if entry.Type()&os.ModeSymlink != 0 {
			if !opts.FollowSymlinks {
				continue
			}
			resolvedPath, err := filepath.EvalSymlinks(fullPath)
			if err != nil || resolvedPath == "" {
				slog.Warn("skipping broken symlink", "path", fullPath, "error", err)
				continue
			}
			info, err := os.Stat(resolvedPath)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if visited != nil {
					if _, seen := visited[resolvedPath]; seen {
						continue
					}
					visited[resolvedPath] = struct{}{}
				}
				w.scanDirectory(ctx, fullPath, opts, paths, depth+1, processed, visited)
				continue
			}
		}

		if entry.IsDir() {
			if visited != nil {
				realPath := fullPath
				if resolved, err := filepath.EvalSymlinks(fullPath); err == nil && resolved != "" {
					realPath = resolved
				}
				if _, seen := visited[realPath]; seen {
					continue
				}
				visited[realPath] = struct{}{}
			}
			w.scanDirectory(ctx, fullPath, opts, paths, depth+1, processed, visited)
			continue
		}

		if isIncluded(fullPath, opts.Include) {
			if opts.MaxFiles > 0 && *processed >= opts.MaxFiles {
				return
			}
			select {
			case <-ctx.Done():
				return
			case paths <- fullPath:
				*processed++
			}
		}
	}
}

// isIncluded checks whether the path matches any include pattern. An empty
// pattern list includes everything.
func isIncluded(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

func isExcluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

// matchPattern performs glob matching with ** support, falling back to the
// basename for simple patterns without path separators.
func matchPattern(path, pattern string) bool {
	if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		basename := filepath.Base(path)
		if matched, err := doublestar.PathMatch(pattern, basename); err == nil && matched {
			return true
		}
	}
	return false
}
