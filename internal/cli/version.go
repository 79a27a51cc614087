package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with the -X linker flag.
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lincli version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return printJSON(map[string]string{"version": Version})
			}
			fmt.Println("lincli", Version)
			return nil
		},
	}
}
