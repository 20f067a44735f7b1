package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edureuse/internal/restapi"
)

func newSignupCmd(a *app) *cobra.Command {
	var email, phone string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.username == "" {
				return fmt.Errorf("pass --username for the new account")
			}

			password := a.password
			if password == "" {
				var err error
				password, err = readPassword("Choose a password: ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			user, err := a.sessions.Signup(cmd.Context(), restapi.SignupRequest{
				Username: a.username,
				Email:    email,
				Password: password,
				Phone:    phone,
			})
			if err != nil {
				return fmt.Errorf("signup failed: %s", restapi.ErrorDetail(err))
			}

			fmt.Printf("Welcome, %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify credentials against the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			user, err := a.sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", user.Username)
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			if err := a.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			user, err := a.sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>", user.Username, user.Email)
			if user.IsStaff {
				fmt.Print(" [staff]")
			}
			fmt.Println()
			return nil
		},
	}
}
