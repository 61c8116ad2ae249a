package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/depthls/depthls/internal/display"
	"github.com/depthls/depthls/internal/logging"
	"github.com/depthls/depthls/internal/resolver"
	"github.com/depthls/depthls/internal/validation"
	"github.com/depthls/depthls/internal/walker"
)

// Listing flags
var (
	rootPath        string
	rootLiteralPath string
	filterPattern   string
	depthLimit      int
	filesOnly       bool
	longFormat      bool
	noColor         bool
)

// listOptions is the fully resolved input of one listing run.
type listOptions struct {
	spec      resolver.Spec
	depth     int
	filter    string
	filesOnly bool
	long      bool
	color     bool
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rootPath, "path", "", "Root path, expanded as a glob pattern (may match several roots)")
	cmd.Flags().StringVar(&rootLiteralPath, "literal-path", "", "Root path taken verbatim, no wildcard expansion")
	cmd.Flags().StringVar(&filterPattern, "filter", "", "Glob filter on entry names (default \"*\")")
	cmd.Flags().IntVar(&depthLimit, "depth", 0,
		fmt.Sprintf("Maximum directory levels below the root to list (%d-%d)", validation.MinDepth, validation.MaxDepth))
	cmd.Flags().BoolVar(&filesOnly, "file", false, "List files only, excluding directories")
	cmd.Flags().BoolVar(&longFormat, "long", false, "Long format: mode, size, and modification time per entry")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colorized output")

	cmd.MarkFlagsOneRequired("path", "literal-path")
	cmd.MarkFlagsMutuallyExclusive("path", "literal-path")
	_ = cmd.MarkFlagRequired("depth")
}

// runListCmd translates flags and config into listOptions and runs the
// listing against the process stdout.
func runListCmd(cmd *cobra.Command, args []string) error {
	// Cobra enforces this through the flag group marks; kept for callers
	// that construct the command without them.
	if err := validation.ValidateRootFlags(rootPath, rootLiteralPath); err != nil {
		return err
	}

	spec := resolver.Spec{Text: rootPath, Mode: resolver.Pattern}
	if rootLiteralPath != "" {
		spec = resolver.Spec{Text: rootLiteralPath, Mode: resolver.Literal}
	}

	filter := cfg.Filter
	if cmd.Flags().Changed("filter") {
		filter = filterPattern
	}

	colorMode := cfg.Color
	if noColor {
		colorMode = "never"
	}

	opts := listOptions{
		spec:      spec,
		depth:     depthLimit,
		filter:    filter,
		filesOnly: filesOnly,
		long:      longFormat,
		color:     display.ColorEnabled(colorMode, cmd.OutOrStdout()),
	}

	return runList(GetContext(), cmd.OutOrStdout(), opts, GetLogger())
}

// runList resolves the root specification and streams matching entries to
// out, one line per entry, as the walk produces them.
func runList(ctx context.Context, out io.Writer, opts listOptions, logger *logging.Logger) error {
	if err := validation.ValidateDepth(opts.depth); err != nil {
		return err
	}
	if err := validation.ValidateNamePattern(opts.filter); err != nil {
		return err
	}

	roots, err := resolver.Resolve(opts.spec)
	if err != nil {
		return err
	}

	w := walker.New(logger)
	renderer := display.NewRenderer(opts.long, opts.color)
	crit := walker.Criteria{NamePattern: opts.filter, FilesOnly: opts.filesOnly}

	for _, root := range roots {
		logger.Debug().Str("root", root).Int("depth", opts.depth).Msg("walking root")
		for entry, err := range w.Walk(root, opts.depth, crit) {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, renderer.Line(entry))
		}
	}

	return nil
}
