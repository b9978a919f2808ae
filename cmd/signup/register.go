package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/signup/internal/authapi"
	"github.com/jask/signup/internal/logger"
	"github.com/jask/signup/internal/signup"
)

const envPassword = "SIGNUP_PASSWORD"

func registerCmd(opts *rootOptions) *cobra.Command {
	var form signup.Form
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an account without starting the UI",
		Long: `Register submits one registration request and exits.

The password may be given with --password or the SIGNUP_PASSWORD
environment variable. Exits non-zero with the same message the form
would show when registration fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer logger.Sync()
			if form.Password == "" {
				form.Password = os.Getenv(envPassword)
			}
			return register(cmd.Context(), newClient(cfg), &form, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&form.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "account password (or $"+envPassword+")")
	return cmd
}

func register(ctx context.Context, api *authapi.Client, form *signup.Form, out io.Writer) error {
	req, err := form.Prepare()
	if err != nil {
		return err
	}
	res, err := api.Register(ctx, req)
	outcome := form.Apply(res, err)
	logger.Log.Infow("headless registration finished",
		"username", req.Username,
		"attempt", res.RequestID,
		"status", res.StatusCode,
		"outcome", outcome.String(),
		"err", err,
	)
	switch outcome {
	case signup.OutcomeCreated:
		_, _ = fmt.Fprintln(out, "registered")
		return nil
	case signup.OutcomeFailed:
		return errors.New(form.Error)
	default:
		return fmt.Errorf("registration not confirmed (status %d)", res.StatusCode)
	}
}
