package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all accounts (staff only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			users, err := a.admin.Users(cmd.Context())
			if err != nil {
				return err
			}
			for _, user := range users {
				fmt.Printf("#%d  %s <%s>  %d books\n", user.ID, user.Username, user.Email, user.BookCount)
			}
			return nil
		},
	}
}
