package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectionsCmd() *cobra.Command {
	var (
		start int
		count int
	)

	cmd := &cobra.Command{
		Use:   "connections",
		Short: "List your connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			connections, err := cli.GetConnections(start, count)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(connections)
			}

			for _, conn := range connections {
				line := fmt.Sprintf("%s %s (%s)", conn.FirstName, conn.LastName, conn.Username)
				if conn.Headline != "" {
					line += " - " + conn.Headline
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "pagination offset")
	cmd.Flags().IntVar(&count, "count", 40, "page size")

	return cmd
}
