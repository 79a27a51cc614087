package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInvitationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "Manage pending invitations",
	}

	cmd.AddCommand(newInvitationsListCmd())
	cmd.AddCommand(newInvitationsReplyCmd("accept", "Accept a pending invitation", true))
	cmd.AddCommand(newInvitationsReplyCmd("ignore", "Ignore a pending invitation", false))

	return cmd
}

func newInvitationsListCmd() *cobra.Command {
	var (
		start int
		count int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending invitations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			invitations, err := cli.GetInvitations(start, count)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(invitations)
			}

			for _, inv := range invitations {
				fmt.Printf("%s: %s %s (%s)\n", inv.ID, inv.From.FirstName, inv.From.LastName, inv.From.Username)
				if inv.Message != "" {
					fmt.Printf("  %s\n", inv.Message)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "pagination offset")
	cmd.Flags().IntVar(&count, "count", 20, "page size")

	return cmd
}

func newInvitationsReplyCmd(verb string, short string, accept bool) *cobra.Command {
	var sharedSecret string

	cmd := &cobra.Command{
		Use:   verb + " [invitation-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			if err := cli.ReplyToInvitation(args[0], sharedSecret, accept); err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(map[string]any{"invitationId": args[0], "action": verb})
			}
			fmt.Printf("Invitation %s: %s\n", args[0], verb)
			return nil
		},
	}

	cmd.Flags().StringVar(&sharedSecret, "shared-secret", "", "sharedSecret from the invitation listing")

	return cmd
}
