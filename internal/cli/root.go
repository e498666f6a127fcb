package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root launchdash command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "launchdash",
		Short: "Interactive SpaceX launch records dashboard",
		Long: `launchdash serves an interactive dashboard over the SpaceX launch records.
Pick a launch site and a payload range to see launch outcomes per site and
how payload mass relates to mission success.`,
		SilenceUsage: true,
	}
	opts.addFlags(root)

	root.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newReplayCmd(opts),
		newSeedCmd(opts),
		newGenerateCmd(),
	)

	return root
}
