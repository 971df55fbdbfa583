package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsvg/pkg/buildinfo"
)

// versionCommand prints build information as key/value lines.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printKeyValue("version", buildinfo.Version)
			printKeyValue("commit", buildinfo.Commit)
			printKeyValue("built", buildinfo.Date)
		},
	}
}
