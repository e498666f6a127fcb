package cli

import (
	"github.com/spf13/cobra"

	internalcli "github.com/Chamz87/IBM-Capstone-SCE/internal/cli"
)

// NewRootCmd creates the public launchdash root command for embedding.
func NewRootCmd() *cobra.Command {
	return internalcli.NewRootCmd()
}
