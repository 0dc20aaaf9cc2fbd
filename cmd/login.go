package cmd

import (
	"fmt"

	"github.com/avasile/resx-cli/internal/application"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.auth.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			graph, fallback := application.ResolveGraph(identity)
			if fallback {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: unrecognized role %q, using recipient screens\n", identity.Role)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", identity.FullName, graph.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var fullName, email, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.auth.SignUp(cmd.Context(), ports.Registration{
				FullName: fullName,
				Email:    email,
				Password: password,
				Role:     domain.Role(role),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s. Run `resx login` to sign in.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&role, "role", "", "Account role: donor or recipient (default recipient)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and drop the cached session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Restore(cmd.Context()); err != nil {
				return err
			}
			if err := app.auth.SignOut(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := requireIdentity(cmd.Context(), app)
			if err != nil {
				return err
			}

			graph, fallback := application.ResolveGraph(identity)
			if fallback {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: unrecognized role %q, using recipient screens\n", identity.Role)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nrole: %s\nstart screen: %s\n", identity.FullName, identity.Email, graph.Role, graph.Initial)
			return nil
		},
	}
}
