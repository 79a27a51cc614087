package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConversationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conversations",
		Short: "List recent conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			conversations, err := cli.GetConversations()
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(conversations)
			}

			for _, conv := range conversations {
				names := make([]string, 0, len(conv.Participants))
				for _, p := range conv.Participants {
					names = append(names, strings.TrimSpace(p.FirstName+" "+p.LastName))
				}
				marker := " "
				if !conv.Read {
					marker = "*"
				}
				fmt.Printf("%s %s  %s\n", marker, conv.URN, strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func newMessagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "messages [conversation]",
		Short: "Show messages in a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			messages, err := cli.GetMessages(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(messages)
			}

			for _, msg := range messages {
				sender := strings.TrimSpace(msg.Sender.FirstName + " " + msg.Sender.LastName)
				if sender == "" {
					sender = msg.Sender.URN
				}
				fmt.Printf("[%s] %s: %s\n", msg.SentAt.Format("2006-01-02 15:04"), sender, msg.Text)
			}
			return nil
		},
	}
}

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send [conversation] [message]",
		Short: "Send a message to a conversation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if err := cli.SendMessage(args[0], text); err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(map[string]any{"conversation": args[0], "sent": true})
			}
			fmt.Println("Message sent")
			return nil
		},
	}
}
