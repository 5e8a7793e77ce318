package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tybotlabs/tybotctl/internal/config"
	"github.com/tybotlabs/tybotctl/internal/identity"
	"github.com/tybotlabs/tybotctl/internal/log"
	"github.com/tybotlabs/tybotctl/internal/platform"
	"github.com/tybotlabs/tybotctl/internal/session"
	"github.com/tybotlabs/tybotctl/internal/ux"
)

var rootCmd = &cobra.Command{
	Use:   "tybotctl",
	Short: "Admin CLI for the Tybot chatbot platform",
	Long: `tybotctl manages a Tybot chatbot platform: tenants (domaines), workspaces,
chatbots, subscription packages, users, roles and permissions.

Log in once with 'tybotctl auth login'; the session is saved locally and
every subsequent command authenticates with it automatically.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initRuntime() },
}

var (
	flagAPIURL  string
	flagFormat  string
	flagVerbose bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "platform API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

var (
	cfg            *config.Config
	store          *session.Store
	client         *platform.Client
	identityClient *identity.Client
	logger         *log.Logger
)

// initRuntime loads configuration, logging and the session store. It is
// idempotent so the guard and the root hook can both call it.
func initRuntime() error {
	if cfg != nil {
		return nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	if flagAPIURL != "" {
		loaded.APIURL = flagAPIURL
	}
	if flagFormat != "" {
		loaded.Format = flagFormat
	}

	if flagVerbose {
		logger = log.Verbose()
	} else {
		logCfg := log.DefaultConfig()
		logCfg.Level = log.ParseLevel(loaded.LogLevel)
		logger = log.New(logCfg)
	}
	log.SetDefaultLogger(logger)

	sessPath, err := session.DefaultPath()
	if err != nil {
		return err
	}

	cfg = loaded
	store = session.NewStore(sessPath)
	return nil
}

// getClient returns the platform client. The token is read from the session
// store on every request, and a 401 on an authenticated request clears the
// saved session so the next command starts from a clean login.
func getClient() *platform.Client {
	if client == nil {
		client = platform.NewClient(cfg.APIURL)
		client.Tokens = store
		client.OnUnauthorized = func() {
			logger.Warn("session rejected by the platform, clearing saved credentials")
			if err := store.Clear(); err != nil {
				logger.WithError(err).Error("failed to clear session")
			}
		}
	}
	return client
}

// getIdentityClient returns the identity provider client, or an error when
// the provider is not configured.
func getIdentityClient() (*identity.Client, error) {
	if cfg.IdentityURL == "" {
		return nil, fmt.Errorf("identity provider is not configured (set identity_url with 'tybotctl config set identity_url <url>')")
	}
	if identityClient == nil {
		identityClient = identity.NewClient(cfg.IdentityURL, cfg.IdentityAPIKey)
	}
	return identityClient, nil
}

// newFormatter builds the output formatter from the effective format
func newFormatter() (ux.Formatter, error) {
	return ux.NewFormatter(cfg.Format, nil)
}

// output writes data through the formatter; text format renders the table,
// json and yaml render the raw data.
func output(data interface{}, table *ux.Table) error {
	f, err := newFormatter()
	if err != nil {
		return err
	}
	if _, ok := f.(*ux.TextFormatter); ok && table != nil {
		return f.Format(table)
	}
	return f.Format(data)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}
	return id, nil
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
