package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "connect [username|url|urn]",
		Short: "Send a connection request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			if err := cli.Connect(args[0], message); err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(map[string]any{"sent": true, "recipient": args[0]})
			}
			fmt.Printf("Connection request sent to %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "note to include with the connection request")

	return cmd
}
