// Package validation provides input validation for depthls.
// All malformed-input rejection happens here, before any traversal begins.
package validation

import (
	"fmt"
	"path/filepath"
)

// Depth limit bounds. The ceiling also bounds recursion depth, so the
// walker's call stack can never grow past MaxDepth+1 frames.
const (
	MinDepth = 0
	MaxDepth = 255
)

// ValidateDepth checks that the depth limit is within the supported range.
func ValidateDepth(depth int) error {
	if depth < MinDepth || depth > MaxDepth {
		return fmt.Errorf("depth must be between %d and %d, got %d", MinDepth, MaxDepth, depth)
	}
	return nil
}

// ValidateNamePattern checks glob syntax of a name filter pattern.
// An empty pattern is allowed and means "match everything".
func ValidateNamePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}
	return nil
}

// ValidateRootFlags checks that exactly one root specification was given.
// Cobra enforces this too; this exists so non-cobra callers get the same
// boundary behavior.
func ValidateRootFlags(path, literalPath string) error {
	if path == "" && literalPath == "" {
		return fmt.Errorf("one of --path or --literal-path is required")
	}
	if path != "" && literalPath != "" {
		return fmt.Errorf("--path and --literal-path are mutually exclusive")
	}
	return nil
}
