package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsvg/pkg/io"
	"github.com/matzehuels/graphsvg/pkg/pipeline"
)

// updateOpts holds the command-line flags for the update command.
type updateOpts struct {
	output    string // defaults to the input page
	container string // CSS selector of the element holding the graph
	elementID string
	settings  settingsFlags
}

// updateCommand creates the update command, which drives the incremental
// renderer against an HTML page.
func (c *CLI) updateCommand() *cobra.Command {
	opts := updateOpts{container: "body"}

	cmd := &cobra.Command{
		Use:   "update <page.html> <graph>...",
		Short: "Apply graph files to an HTML page in place",
		Long: `Update the graph drawn inside an HTML page. The graph element is created on
first use and reconciled on later runs: vertices and edges are matched by id
(or position when ids are absent), so existing elements are updated instead of
redrawn. Several graph files are applied in order, as successive states.`,
		Example: `  graphsvg update index.html graph.json
  graphsvg update index.html step1.json step2.json --container "#figure" -o out.html`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUpdate(cmd, args[0], args[1:], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output page (default: overwrite the input page)")
	cmd.Flags().StringVar(&opts.container, "container", opts.container, "CSS selector of the container element")
	cmd.Flags().StringVar(&opts.elementID, "id", pipeline.DefaultElementID, "id of the graph's <svg> element")
	opts.settings.register(cmd)

	return cmd
}

func (c *CLI) runUpdate(cmd *cobra.Command, page string, graphs []string, opts *updateOpts) error {
	ctx := cmd.Context()

	settings, err := opts.settings.resolve(cmd)
	if err != nil {
		return err
	}
	doc, err := io.LoadDocument(page)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{ElementID: opts.elementID, Settings: settings}

	prog := newProgress(c.Logger)
	for _, path := range graphs {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, err := runner.Load(ctx, path)
		if err != nil {
			return err
		}
		report, err := runner.Update(ctx, doc, opts.container, g, popts)
		if err != nil {
			return err
		}
		if report.Created {
			printInfo("Created #%s in %s", opts.elementID, opts.container)
		}
		printSuccess("Applied %s", path)
		printReport(report)
	}

	output := opts.output
	if output == "" {
		output = page
	}
	if err := io.SaveDocument(doc, output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Updated %s", output))
	printFile(output)
	return nil
}
