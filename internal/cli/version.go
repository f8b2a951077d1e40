package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cialfor/intake/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetBuildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "intake %s\n", version.Info())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", info.GoVersion, info.Platform)
		},
	}
}
