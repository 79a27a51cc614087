package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [username|url|urn]",
		Short: "Look up a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			profile, err := cli.GetProfile(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(profile)
			}

			fmt.Printf("%s %s (%s)\n", profile.FirstName, profile.LastName, profile.Username)
			if profile.Headline != "" {
				fmt.Println(profile.Headline)
			}
			if profile.Location != "" {
				fmt.Println(profile.Location)
			}
			fmt.Println(profile.ProfileURL)
			if profile.URN != "" {
				fmt.Println(profile.URN)
			}
			return nil
		},
	}
}
