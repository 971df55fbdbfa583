package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsvg/pkg/errors"
	"github.com/matzehuels/graphsvg/pkg/pipeline"
	"github.com/matzehuels/graphsvg/pkg/render"
)

// stdoutPath selects standard output for -o, and standard input for graph arguments.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file, base path for multiple formats, or "-"
	elementID string // id of the root <svg> element
	formats   string // comma-separated output formats
	scale     float64
	noCache   bool
	refresh   bool
	settings  settingsFlags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Render a graph file to SVG, DOT, PDF or PNG",
		Long: `Render a graph file (JSON or TOML, "-" for stdin) with precomputed vertex
positions. Without -o the output is written next to the input file.`,
		Example: `  graphsvg render graph.json
  graphsvg render graph.json -f svg,png --scale 3 -o out/graph
  graphsvg render graph.toml --settings style.toml --edge-color "#999" -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format), base path (multiple), or "-" for stdout`)
	cmd.Flags().StringVar(&opts.elementID, "id", pipeline.DefaultElementID, "id of the root <svg> element")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), dot, dot-svg, pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	opts.settings.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()

	formats, err := parseFormats(opts.formats)
	if err != nil {
		return err
	}
	settings, err := opts.settings.resolve(cmd)
	if err != nil {
		return err
	}
	toStdout := opts.output == stdoutPath || (opts.output == "" && input == stdoutPath)
	if toStdout && len(formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stdout takes a single format, got %d", len(formats))
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		ElementID: opts.elementID,
		Settings:  settings,
		Formats:   formats,
		Scale:     opts.scale,
		Refresh:   opts.refresh,
	}

	prog := newProgress(c.Logger)
	result, err := c.execute(ctx, runner, input, popts, !toStdout && slices.ContainsFunc(formats, slow))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", input))

	if toStdout {
		_, err := os.Stdout.Write(result.Artifacts[formats[0]])
		return err
	}

	var paths []string
	if len(formats) == 1 && opts.output != "" {
		paths = []string{opts.output}
	} else {
		base := basePath(opts.output, input)
		for _, f := range formats {
			paths = append(paths, base+f.Ext())
		}
	}
	for i, f := range formats {
		if err := writeOutput(paths[i], result.Artifacts[f]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", input)
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// execute runs the pipeline, behind a spinner when a slow format is requested.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options, spin bool) (*pipeline.Result, error) {
	if !spin {
		return runner.Execute(ctx, input, opts)
	}
	s := newSpinnerWithContext(ctx, "Rendering "+input+"...")
	s.Start()
	result, err := runner.Execute(ctx, input, opts)
	s.Stop()
	return result, err
}

// slow reports whether f shells out to Graphviz or rsvg-convert.
func slow(f render.Format) bool {
	return f == render.FormatDOTSVG || f.Binary()
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output ends in
// a format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	for _, f := range render.Formats {
		if ext := f.Ext(); strings.Count(ext, ".") > 1 && strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	ext := filepath.Ext(output)
	for _, f := range render.Formats {
		if ext == f.Ext() {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
