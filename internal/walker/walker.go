// Package walker implements depth-limited recursive directory traversal.
//
// The traversal is depth-first and lazy: entries are yielded as they are
// discovered, a container before its contents, and no directory is listed
// until the consumer pulls past the entries preceding it. A subtree whose
// listing would exceed the depth limit is never listed at all.
package walker

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/depthls/depthls/internal/logging"
)

// Criteria filters the entries yielded by a walk.
type Criteria struct {
	// NamePattern is a glob pattern matched against the entry base name
	// (filepath.Match semantics: * any sequence, ? any single character).
	// Empty or "*" matches everything.
	NamePattern string

	// FilesOnly excludes containers from the output. Traversal still
	// descends into them.
	FilesOnly bool
}

// matches reports whether an entry passes the filter criteria.
// The pattern is validated at the CLI boundary, so match errors
// cannot occur here and are discarded, as filepath.Match callers
// conventionally do once syntax is known good.
func (c Criteria) matches(name string, isDir bool) bool {
	if c.FilesOnly && isDir {
		return false
	}
	if c.NamePattern == "" || c.NamePattern == "*" {
		return true
	}
	matched, _ := filepath.Match(c.NamePattern, name)
	return matched
}

// Walker walks directory trees to a bounded depth.
type Walker struct {
	logger *logging.Logger

	// readDir is os.ReadDir except in tests, which substitute a counting
	// wrapper to observe which directories get listed.
	readDir func(string) ([]os.DirEntry, error)
}

// New creates a Walker. The logger carries the diagnostic trace channel:
// skipped subtrees are reported at debug level and never affect results.
func New(logger *logging.Logger) *Walker {
	return &Walker{
		logger:  logger,
		readDir: os.ReadDir,
	}
}

// Walk returns a lazy depth-first sequence of the entries under root that
// match crit, descending at most limit levels below root. A limit of 0
// lists only root's immediate children.
//
// A matching container is yielded before its contents. When descending
// into a container would exceed the limit, that entire subtree is skipped
// without being listed; the container itself is still yielded if it
// matched.
//
// A failed directory listing yields a non-nil error as the final element
// and ends the sequence; entries yielded before the failure stand.
func (w *Walker) Walk(root string, limit int, crit Criteria) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		w.walk(root, limit, crit, 0, yield)
	}
}

// walk lists one directory and recurses into its sub-containers while the
// depth budget allows. currentDepth is owned by this frame; the root frame
// starts at 0. Returns false once the consumer stopped or a listing error
// ended the sequence.
func (w *Walker) walk(dir string, limit int, crit Criteria, currentDepth int, yield func(Entry, error) bool) bool {
	workingDepth := currentDepth + 1

	children, err := w.readDir(dir)
	if err != nil {
		yield(Entry{}, fmt.Errorf("listing %s: %w", dir, err))
		return false
	}

	for _, child := range children {
		entry := newEntry(dir, child, workingDepth, w.logger)

		if crit.matches(entry.Name, entry.IsDir) {
			if !yield(entry, nil) {
				return false
			}
		}

		if !entry.IsDir {
			continue
		}

		if workingDepth > limit {
			w.logger.Debug().
				Str("path", entry.Path).
				Int("depth", workingDepth).
				Int("limit", limit).
				Msg("depth limit reached, skipping subtree")
			continue
		}

		if !w.walk(entry.Path, limit, crit, workingDepth, yield) {
			return false
		}
	}

	return true
}
