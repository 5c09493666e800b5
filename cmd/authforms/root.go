package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the authforms CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authforms",
		Short: "Login and signup forms with live validation",
		Long: `authforms serves login and signup pages that validate input as it is
typed, and offers the same validation and submission from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newSignupCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newStrengthCmd())

	return cmd
}
