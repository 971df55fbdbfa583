package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <graph>...",
		Short: "Check graph files without rendering",
		Long: `Check that graph files decode and that every edge references an existing
vertex. The renderers assume both, so validate is the place to catch them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd, args)
		},
	}
}

func (c *CLI) runValidate(cmd *cobra.Command, paths []string) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	failed := 0
	for _, path := range paths {
		g, err := runner.Load(cmd.Context(), path)
		if err != nil {
			failed++
			printError("%s: %v", path, err)
			continue
		}
		printSuccess("%s", path)
		printDetail("%d vertices · %d edges", len(g.Vertices), len(g.Edges))
		if g.HasImages() && g.HasLabels() {
			printWarning("both images and labels present; static output draws images only")
		}
	}
	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidGraph, "%d of %d graph files invalid", failed, len(paths))
	}
	return nil
}
