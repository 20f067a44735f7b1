package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

func newMessagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"msg"},
		Short:   "Read and send messages about listings",
	}

	inbox := &cobra.Command{
		Use:   "inbox",
		Short: "List received messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			msgs, err := a.messages.Inbox(cmd.Context())
			if err != nil {
				return err
			}
			printMessages(msgs, true)
			return nil
		},
	}

	sent := &cobra.Command{
		Use:   "sent",
		Short: "List sent messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			msgs, err := a.messages.Sent(cmd.Context())
			if err != nil {
				return err
			}
			printMessages(msgs, false)
			return nil
		},
	}

	send := &cobra.Command{
		Use:   "send <book-id> <text>",
		Short: "Send a message to a listing's seller",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.login(cmd); err != nil {
				return err
			}
			if _, err := a.messages.Send(cmd.Context(), id, args[1]); err != nil {
				return fmt.Errorf("send message: %s", restapi.ErrorDetail(err))
			}
			fmt.Println("Message sent.")
			return nil
		},
	}

	cmd.AddCommand(inbox, sent, send)
	return cmd
}

func printMessages(msgs []models.Message, inbox bool) {
	if len(msgs) == 0 {
		fmt.Println("No messages.")
		return
	}
	for _, m := range msgs {
		who := ""
		if inbox {
			if m.Sender != nil {
				who = "from " + m.Sender.Username
			}
		} else if m.Recipient != nil {
			who = "to " + m.Recipient.Username
		}
		fmt.Printf("#%d %s (book %d): %s\n", m.ID, who, m.Book, m.Body)
	}
}
