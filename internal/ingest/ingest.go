// Package ingest finds log files on disk and turns them into one merged
// parse result. The parser itself never touches the filesystem; it receives
// pre-read (content, name) pairs from here.
package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/trackdown/internal/track"
)

// parseConcurrency bounds the number of files read and parsed at once.
const parseConcurrency = 8

// Discover resolves an input path into the list of files to parse. A plain
// file is returned as-is regardless of extension; a directory is walked
// recursively, keeping files whose extension is in exts and skipping hidden
// directories. The returned paths are sorted for stable output.
func Discover(path string, exts []string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading input path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	keep := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		keep[strings.ToLower(ext)] = true
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories, but not a hidden root the user
			// asked for explicitly.
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if keep[strings.ToLower(filepath.Ext(p))] {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}

	sort.Strings(files)
	return files, nil
}

// ParseFiles reads and parses every file concurrently and merges the
// results. A file that cannot be read contributes an ErrorReading entry to
// the merged result instead of failing the run; merge order does not matter
// for the aggregate, so the concurrency is invisible to callers.
func ParseFiles(paths []string, filter track.Filter) track.ParseResult {
	results := make([]track.ParseResult, len(paths))

	var g errgroup.Group
	g.SetLimit(parseConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				results[i] = track.ReadFailure(path, err)
				return nil
			}
			results[i] = track.Parse(string(content), filter, path)
			return nil
		})
	}
	// The workers report failures through the results themselves.
	_ = g.Wait()

	merged := track.NewParseResult()
	for _, res := range results {
		merged = merged.Merge(res)
	}
	return merged
}

// ParsePath is the one-call form used by the commands: discover then parse.
// The returned count is the number of files read.
func ParsePath(path string, exts []string, filter track.Filter) (track.ParseResult, int, error) {
	files, err := Discover(path, exts)
	if err != nil {
		return track.ParseResult{}, 0, err
	}
	return ParseFiles(files, filter), len(files), nil
}
