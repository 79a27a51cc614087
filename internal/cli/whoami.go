package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in profile and network counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			identity, err := cli.WhoAmI()
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(identity)
			}

			profile := identity.Profile
			fmt.Printf("%s %s (%s)\n", profile.FirstName, profile.LastName, profile.Username)
			if profile.Headline != "" {
				fmt.Println(profile.Headline)
			}
			fmt.Printf("Followers: %d\n", identity.NetworkInfo.FollowersCount)
			fmt.Printf("Connections: %d\n", identity.NetworkInfo.ConnectionsCount)
			return nil
		},
	}
}
