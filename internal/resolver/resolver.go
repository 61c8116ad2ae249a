// Package resolver turns a user-supplied root specification into concrete,
// existing filesystem locations.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/depthls/depthls/internal/pathutil"
)

// Mode selects how the specification text is interpreted.
type Mode int

const (
	// Pattern expands glob metacharacters against the filesystem and may
	// resolve to any number of locations.
	Pattern Mode = iota

	// Literal matches the text verbatim, wildcards included, and resolves
	// to at most one location.
	Literal
)

// String returns the flag name the mode corresponds to, for error messages.
func (m Mode) String() string {
	if m == Literal {
		return "LiteralPath"
	}
	return "Path"
}

// Spec is a root specification: one text value and the mode to read it in.
type Spec struct {
	Text string
	Mode Mode
}

// NotFoundError reports that a specification resolved to no existing
// location. It is fatal: the caller aborts before any traversal.
type NotFoundError struct {
	Spec Spec
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: '%s'", e.Spec.Mode, e.Spec.Text)
}

// Resolve expands spec into the existing locations it names, in glob order
// for patterns. Non-existence in either mode normalizes to an empty result,
// which comes back as a *NotFoundError carrying the original spec. Any
// other failure (malformed pattern, stat error that is not non-existence)
// propagates unchanged.
//
// Resolve only reads the filesystem; it never lists directory contents.
func Resolve(spec Spec) ([]string, error) {
	expanded, err := pathutil.Expand(spec.Text)
	if err != nil {
		return nil, err
	}

	var roots []string
	switch spec.Mode {
	case Literal:
		_, err := os.Stat(expanded)
		switch {
		case err == nil:
			roots = []string{expanded}
		case errors.Is(err, fs.ErrNotExist):
			// Normalized to the empty result below.
		default:
			return nil, err
		}
	default:
		roots, err = doublestar.FilepathGlob(expanded)
		if err != nil {
			return nil, fmt.Errorf("invalid path pattern %q: %w", spec.Text, err)
		}
	}

	if len(roots) == 0 {
		return nil, &NotFoundError{Spec: spec}
	}
	return roots, nil
}
