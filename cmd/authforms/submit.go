package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authforms/pkg/apiclient"
	"github.com/dmitrymomot/authforms/pkg/config"
	"github.com/dmitrymomot/authforms/pkg/form"
)

var errNotAccepted = errors.New("submission not accepted")

// clientFlags are shared by login and signup.
type clientFlags struct {
	url string
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "url", "", "server base URL, overrides API_BASE_URL")
}

func (f *clientFlags) client() (*apiclient.Client, error) {
	var cfg apiclient.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if f.url != "" {
		cfg.BaseURL = f.url
	}
	return apiclient.NewFromConfig(cfg), nil
}

func newLoginCmd() *cobra.Command {
	var (
		flags clientFlags
		f     form.LoginForm
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Validate credentials and submit them to the login API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}
			out, err := c.Login(cmd.Context(), f)
			return report(cmd, out, err)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&f.Email, "email", "", "account email")
	cmd.Flags().StringVar(&f.Password, "password", "", "account password")

	return cmd
}

func newSignupCmd() *cobra.Command {
	var (
		flags clientFlags
		f     form.SignupForm
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Validate a registration and submit it to the signup API",
		Long: `Validate a registration the way the signup page does, including the
password confirmation, and submit it. Nothing is sent if a field is invalid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}
			out, err := c.Signup(cmd.Context(), f)
			return report(cmd, out, err)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&f.Firstname, "firstname", "", "first name")
	cmd.Flags().StringVar(&f.Surname, "surname", "", "surname")
	cmd.Flags().StringVar(&f.Email, "email", "", "email")
	cmd.Flags().StringVar(&f.Password, "password", "", "password")
	cmd.Flags().StringVar(&f.ConfirmPassword, "confirm-password", "", "password again")

	return cmd
}

// report prints the outcome. Anything but Accepted is returned as an error
// so the process exits non-zero.
func report(cmd *cobra.Command, out apiclient.Outcome, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	if _, ok := out.(apiclient.Accepted); !ok {
		return fmt.Errorf("%w: %s", errNotAccepted, out)
	}
	return nil
}
