package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand(deps commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User accounts",
	}
	cmd.AddCommand(newUserAddCommand(deps), newUserLoginCommand(deps))
	return cmd
}

func newUserAddCommand(deps commandDeps) *cobra.Command {
	var firstName, lastName, email, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		Args:  exactArgs(0, "flags only"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return usageErrorf("user add requires --password")
			}
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				user, err := store.Repos.Users.CreateUser(ctx, firstName, lastName, email, password)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, user)
				}
				_, err = fmt.Fprintf(deps.out, "created user %d %s <%s>\n", user.ID, user.DisplayName(), user.Email)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&firstName, "first", "", "First name")
	cmd.Flags().StringVar(&lastName, "last", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func newUserLoginCommand(deps commandDeps) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check an email and password",
		Args:  exactArgs(0, "flags only"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				user, err := store.Repos.Users.Authenticate(ctx, email, password)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, user)
				}
				_, err = fmt.Fprintf(deps.out, "authenticated as %s\n", user.DisplayName())
				return err
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}
