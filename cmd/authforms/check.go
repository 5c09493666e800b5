package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

var errInvalidValue = errors.New("invalid value")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <name|email|password> <value>",
		Short: "Check a value against a field rule",
		Long: `Check a value against the name, email or password rule used by the
forms. Prints "valid" or the message the form would show.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := validator.ParseFieldKind(args[0])
			if err != nil {
				return err
			}
			res := validator.ValidateField(kind, args[1])
			if !res.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), res.Reason)
				return errInvalidValue
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Classify password strength as low, mid or high",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), validator.ClassifyStrength(args[0]))
			return nil
		},
	}
}
