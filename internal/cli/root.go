package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lincli/lincli/internal/credentials"
	"github.com/lincli/lincli/internal/logging"
	"github.com/lincli/lincli/pkg/voyager"
)

var (
	credentialsFile string
	logLevel        string
	jsonOutput      bool
	proxyAddr       string

	// initialized by the root command's PersistentPreRunE
	log *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lincli",
		Short: "lincli talks to LinkedIn from the command line",
		Long:  "lincli talks to LinkedIn's Voyager API with your browser session cookies: profile lookup, connection requests, invitations, and messaging.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logLevel
			if level == "" {
				level = "warn"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&credentialsFile, "credentials", "", "credentials file (default ~/.lincli/credentials.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print machine-readable JSON instead of human-readable output")
	cmd.PersistentFlags().StringVar(&proxyAddr, "proxy", "", "http, https or socks5 proxy url")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newWhoamiCmd())
	cmd.AddCommand(newProfileCmd())
	cmd.AddCommand(newConnectCmd())
	cmd.AddCommand(newConnectionsCmd())
	cmd.AddCommand(newInvitationsCmd())
	cmd.AddCommand(newConversationsCmd())
	cmd.AddCommand(newMessagesCmd())
	cmd.AddCommand(newSendCmd())

	return cmd
}

// newClient loads credentials and constructs a Voyager client for one command
// invocation.
func newClient() (*voyager.Client, error) {
	creds, err := credentials.Load(credentialsFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("provenance", string(creds.Provenance())).Msg("Loaded session credentials")

	cli := voyager.NewClient(&voyager.ClientOpts{Credentials: creds}, log.Sub("voyager").Zerolog())
	if proxyAddr != "" {
		if err := cli.SetProxy(proxyAddr); err != nil {
			return nil, err
		}
	}
	return cli, nil
}

// Execute runs the root command.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
