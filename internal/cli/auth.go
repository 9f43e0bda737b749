package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/shopctl/internal/common"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "User authentication commands",
	}
	cmd.AddCommand(newLoginCommand(app))
	cmd.AddCommand(newLogoutCommand(app))
	return cmd
}

// LoginOptions holds flags for auth login.
type LoginOptions struct {
	Username string
	Password string
}

func newLoginCommand(app *App) *cobra.Command {
	opts := &LoginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			password := opts.Password
			if password == "" {
				pw, err := GetPassword(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				password = string(pw)
				common.WipeByteArray(pw)
			}

			rt, err := app.open(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			ok, err := rt.auth.Login(ctx, opts.Username, password)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Login failed: invalid username or password.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", opts.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "account username")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "account password (prompted when omitted)")

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := app.open(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.auth.Logout(ctx); err != nil {
				return err
			}
			// deliberately the same line whether or not a session existed
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
