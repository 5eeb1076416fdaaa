package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/account"
	"github.com/Ramsha-Haris/table/internal/nav"
)

var (
	loginEmail    string
	loginPassword string

	signupFirst string
	signupLast  string
	signupEmail string
	signupRole  string
	signupTerms bool
	whoamiJSON  bool
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")

	signupCmd.Flags().StringVar(&signupFirst, "first-name", "", "First name")
	signupCmd.Flags().StringVar(&signupLast, "last-name", "", "Last name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email")
	signupCmd.Flags().StringVar(&signupRole, "role", "", "Account type (user or host)")
	signupCmd.Flags().BoolVar(&signupTerms, "accept-terms", false, "Accept the terms and conditions")

	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Output in JSON format")

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and keep the session for this tab",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)
		email, password := loginEmail, loginPassword
		var err error
		if email == "" {
			if email, err = p.ask("Email", ""); err != nil {
				return err
			}
		}
		if password == "" {
			if password, err = p.secret("Password"); err != nil {
				return err
			}
		}

		flows := account.New(current.client, current.session, current.notifier, current.log,
			account.WithLoginDelay(current.settings.RedirectDelay))
		redirect := flows.Login(cmd.Context(), account.LoginInput{Email: email, Password: password})
		if redirect == nil {
			return fmt.Errorf("login failed")
		}
		return follow(cmd, redirect)
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)
		in := account.SignupInput{
			FirstName:     signupFirst,
			LastName:      signupLast,
			Email:         signupEmail,
			Role:          signupRole,
			TermsAccepted: signupTerms,
		}

		fields := []struct {
			label  string
			dst    *string
			masked bool
		}{
			{"First name", &in.FirstName, false},
			{"Last name", &in.LastName, false},
			{"Email", &in.Email, false},
			{"Password", &in.Password, true},
			{"Confirm password", &in.ConfirmPassword, true},
		}
		for _, f := range fields {
			if *f.dst != "" {
				continue
			}
			read := func() (string, error) { return p.ask(f.label, "") }
			if f.masked {
				read = func() (string, error) { return p.secret(f.label) }
			}
			v, err := read()
			if err != nil {
				return err
			}
			*f.dst = v
		}
		if in.Role == "" {
			roles := []string{"user", "host"}
			i, err := p.choose("Account type:", roles, false)
			if err != nil {
				return err
			}
			in.Role = roles[i]
		}
		if !in.TermsAccepted {
			in.TermsAccepted = p.confirm("Accept the terms and conditions?")
		}

		flows := account.New(current.client, current.session, current.notifier, current.log)
		res := flows.Signup(cmd.Context(), in)
		if len(res.Errors) > 0 {
			for _, msg := range res.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", msg)
			}
			return fmt.Errorf("signup failed")
		}
		if res.Redirect == nil {
			return fmt.Errorf("signup failed")
		}
		return follow(cmd, res.Redirect)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session for this tab",
	RunE: func(cmd *cobra.Command, args []string) error {
		current.session.Logout(cmd.Context())
		if err := current.cookies.Clear(); err != nil {
			current.log.WithError(err).Warn("clearing cookies")
		}
		current.forget = true
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return follow(cmd, nav.Now(nav.Login))
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user logged in on this tab",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := current.session.User()
		if u == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}
		if whoamiJSON {
			return printJSON(cmd, u)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s> (%s)\n", u.FirstName, u.LastName, u.Email, u.Role)
		return nil
	},
}
