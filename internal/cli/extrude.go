package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pixelextrude/pkg/pipeline"
)

// extrudeFlags holds flags that are not part of pipeline.Options.
type extrudeFlags struct {
	config  string
	noCache bool
}

// extrudeCommand creates the extrude command.
func (c *CLI) extrudeCommand() *cobra.Command {
	opts := pipeline.DefaultOptions()
	var flags extrudeFlags

	cmd := &cobra.Command{
		Use:   "extrude <file.svg>...",
		Short: "Add a voxel extrusion to pixel-art SVGs",
		Long: `Extrude reads each SVG, stacks darkened and shifted copies of its visible
pixels behind the original, and writes <name>_extruded.svg into the output
directory. With --split it also writes <name>_front.svg and <name>_body.svg.

Values from --config are applied first; flags given on the command line win.`,
		Example: `  pixelextrude extrude hat.svg
  pixelextrude extrude -o slabs --depth 6 --split sprites/*.svg
  pixelextrude extrude --config extrude.toml hat.svg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := resolveOptions(cmd, flags.config, opts)
			if err != nil {
				return err
			}
			return c.runExtrude(cmd.Context(), args, final, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.OutputDir, "outdir", "o", opts.OutputDir, "output directory")
	f.IntVar(&opts.Depth, "depth", opts.Depth, "number of back layers")
	f.Float64Var(&opts.DX, "dx", opts.DX, "x shift per layer")
	f.Float64Var(&opts.DY, "dy", opts.DY, "y shift per layer")
	f.Float64Var(&opts.FarFactor, "far", opts.FarFactor, "brightness of the farthest layer")
	f.Float64Var(&opts.NearFactor, "near", opts.NearFactor, "brightness of the nearest layer")
	f.Float64Var(&opts.SkipAlphaLE, "skip-alpha-le", opts.SkipAlphaLE, "skip pixels with alpha at or below this")
	f.BoolVar(&opts.Split, "split", opts.Split, "also write front and body documents")
	f.IntVar(&opts.MaxBackRects, "max-back-rects", opts.MaxBackRects, "refuse inputs whose back layer would exceed this many rects")
	f.IntVar(&opts.Indent, "indent", opts.Indent, "indent output by this many spaces (0 keeps the input layout)")
	f.BoolVar(&opts.Declaration, "declaration", opts.Declaration, "write an XML declaration")
	f.IntVarP(&opts.Parallel, "parallel", "j", opts.Parallel, "files processed concurrently")
	f.BoolVar(&opts.Refresh, "refresh", false, "ignore cached artifacts")
	f.StringVar(&flags.config, "config", "", "TOML file with extrusion settings")
	f.BoolVar(&flags.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// resolveOptions layers config file values under explicitly set flags.
func resolveOptions(cmd *cobra.Command, configPath string, flagOpts pipeline.Options) (pipeline.Options, error) {
	if configPath == "" {
		return flagOpts, nil
	}
	opts, err := pipeline.LoadConfig(configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	applyFlags(&opts, flagOpts, cmd.Flags().Changed)
	return opts, nil
}

// applyFlags copies every option whose flag was changed from src to dst.
func applyFlags(dst *pipeline.Options, src pipeline.Options, changed func(string) bool) {
	if changed("outdir") {
		dst.OutputDir = src.OutputDir
	}
	if changed("depth") {
		dst.Depth = src.Depth
	}
	if changed("dx") {
		dst.DX = src.DX
	}
	if changed("dy") {
		dst.DY = src.DY
	}
	if changed("far") {
		dst.FarFactor = src.FarFactor
	}
	if changed("near") {
		dst.NearFactor = src.NearFactor
	}
	if changed("skip-alpha-le") {
		dst.SkipAlphaLE = src.SkipAlphaLE
	}
	if changed("split") {
		dst.Split = src.Split
	}
	if changed("max-back-rects") {
		dst.MaxBackRects = src.MaxBackRects
	}
	if changed("indent") {
		dst.Indent = src.Indent
	}
	if changed("declaration") {
		dst.Declaration = src.Declaration
	}
	if changed("parallel") {
		dst.Parallel = src.Parallel
	}
	dst.Refresh = src.Refresh
}

func (c *CLI) runExtrude(ctx context.Context, paths []string, opts pipeline.Options, flags extrudeFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	ctx = withLogger(ctx, c.Logger)

	c.Logger.Debug("extruding",
		"files", len(paths),
		"outdir", opts.OutputDir,
		"depth", opts.Depth,
		"split", opts.Split)

	prog := newBatchProgress(c.Logger, len(paths))
	results, err := runner.RunBatch(ctx, paths, opts)
	if err != nil {
		return err
	}

	for _, fr := range results {
		printFileResult(fr)
	}

	failed := pipeline.Failed(results)
	prog.done(failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
