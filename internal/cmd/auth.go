package cmd

import (
	goerrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	tyboterrors "github.com/tybotlabs/tybotctl/internal/errors"
	"github.com/tybotlabs/tybotctl/internal/platform"
	"github.com/tybotlabs/tybotctl/internal/tui"
	"github.com/tybotlabs/tybotctl/internal/ux"
)

var validate = validator.New()

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication credentials",
	Long: `Manage authentication credentials for the Tybot platform.

Credentials are stored in ~/.tybot/session.json.

Subcommands:
  login           Login with email and password
  logout          Logout and remove credentials
  status          Show current authentication status
  recover         Send a password recovery email
  reset-password  Set a new password with a recovery token

Examples:
  tybotctl auth login --email admin@example.com
  tybotctl auth status
  tybotctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// authLoginCmd handles user login
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the platform",
	Long: `Login to the Tybot platform with your email and password.

The access token and profile are saved locally; subsequent commands use them
automatically. Omitted flags are prompted for interactively.

Examples:
  tybotctl auth login --email admin@example.com --password secret
  tybotctl auth login`,
	RunE: runAuthLogin,
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if email == "" && tui.ShouldPrompt() {
		var err error
		email, err = tui.PromptForString(tui.Prompt{
			Message:     "Email",
			Placeholder: "you@example.com",
			Required:    true,
		})
		if err != nil {
			return err
		}
	}
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return tyboterrors.NewEmailInvalidError(email)
	}

	if password == "" && tui.ShouldPrompt() {
		var err error
		password, err = tui.PromptForPassword("Password")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("--password is required")
	}

	// Login is the one unauthenticated call, so it bypasses the session-backed
	// client and never carries a stale bearer token.
	loginClient := platform.NewClient(cfg.APIURL)
	resp, err := loginClient.Login(cmd.Context(), email, password)
	if err != nil {
		var apiErr *platform.APIError
		if goerrors.As(err, &apiErr) {
			return tyboterrors.NewLoginFailedError(apiErr.Message, err)
		}
		return tyboterrors.NewAPIUnreachableError(cfg.APIURL, err)
	}

	if err := store.Save(resp.Session()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Welcome to Tybot, %s!\n", resp.UserData.FullName)
	fmt.Printf("Dashboard: %s%s\n", cfg.DashboardURL, resp.UserData.Role.DashboardPath())
	return nil
}

// authLogoutCmd handles user logout
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove credentials",
	Long: `Logout and remove the stored session.

When an identity provider is configured its sign-out endpoint is called
first; the local session is removed either way.

Examples:
  tybotctl auth logout`,
	RunE: runAuthLogout,
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	sess, err := store.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	if idc, err := getIdentityClient(); err == nil {
		// Best effort: a failed provider sign-out must not keep the local
		// session around.
		if err := idc.SignOut(cmd.Context(), sess.AccessToken); err != nil {
			logger.WithError(err).Warn("identity provider sign-out failed")
		}
	}

	fmt.Printf("Logging out: %s\n", sess.User.Email)
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	fmt.Println("Logged out successfully.")
	fmt.Println()
	fmt.Println("Use 'tybotctl auth login' to login again.")
	return nil
}

// authStatusCmd shows current auth status
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long: `Show the current authentication status and the saved profile.

Examples:
  tybotctl auth status`,
	RunE: runAuthStatus,
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	sess, err := store.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Println("Not logged in.")
		fmt.Println("Use 'tybotctl auth login' to authenticate.")
		return nil
	}

	f, err := newFormatter()
	if err != nil {
		return err
	}
	if _, ok := f.(*ux.TextFormatter); !ok {
		return f.Format(sess.User)
	}

	fmt.Printf("Logged in as: %s\n", sess.User.Email)
	fmt.Printf("Name:         %s\n", sess.User.FullName)
	fmt.Printf("Role:         %s\n", sess.User.Role)
	fmt.Printf("Dashboard:    %s%s\n", cfg.DashboardURL, sess.User.Role.DashboardPath())
	return nil
}

// authRecoverCmd sends a password recovery email
var authRecoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Send a password recovery email",
	Long: `Request a password recovery email from the identity provider.

The email contains a link to the configured reset page carrying a recovery
token; use 'tybotctl auth reset-password' with that token.

Examples:
  tybotctl auth recover --email admin@example.com`,
	RunE: runAuthRecover,
}

func runAuthRecover(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")

	if email == "" && tui.ShouldPrompt() {
		var err error
		email, err = tui.PromptForString(tui.Prompt{
			Message:     "Email",
			Placeholder: "you@example.com",
			Required:    true,
		})
		if err != nil {
			return err
		}
	}
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return tyboterrors.NewEmailInvalidError(email)
	}

	idc, err := getIdentityClient()
	if err != nil {
		return err
	}
	if err := idc.Recover(cmd.Context(), email, cfg.ResetRedirect); err != nil {
		return err
	}

	fmt.Printf("Recovery email sent to %s.\n", email)
	fmt.Println("Check your inbox and run 'tybotctl auth reset-password --token <token>'.")
	return nil
}

// authResetPasswordCmd sets a new password using a recovery token
var authResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password with a recovery token",
	Long: `Set a new password using the recovery token from the recovery email.

Examples:
  tybotctl auth reset-password --token <token> --password <new-password>`,
	RunE: runAuthResetPassword,
}

func runAuthResetPassword(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	password, _ := cmd.Flags().GetString("password")

	if token == "" {
		return fmt.Errorf("--token is required")
	}
	if password == "" && tui.ShouldPrompt() {
		var err error
		password, err = tui.PromptForPassword("New password")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("--password is required")
	}

	idc, err := getIdentityClient()
	if err != nil {
		return err
	}
	if err := idc.UpdatePassword(cmd.Context(), token, password); err != nil {
		return err
	}

	fmt.Println("Password updated.")
	fmt.Println("Use 'tybotctl auth login' to sign in with the new password.")
	return nil
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRecoverCmd.Flags().String("email", "", "account email")

	authResetPasswordCmd.Flags().String("token", "", "recovery token from the reset email")
	authResetPasswordCmd.Flags().String("password", "", "new password")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRecoverCmd)
	authCmd.AddCommand(authResetPasswordCmd)

	rootCmd.AddCommand(authCmd)
}
