package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tybotlabs/tybotctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit tybotctl configuration",
	Long: `Manage the tybotctl configuration stored at ~/.tybot/config.yaml

Configuration includes:
  api_url            platform REST API base URL
  dashboard_url      web dashboard origin
  identity_url       identity provider origin (password recovery)
  identity_api_key   identity provider public API key
  reset_redirect     callback URL for recovery emails
  format             default output format (text, json, yaml)
  log_level          minimum log level
  page_limit         default page size for paginated lists

Every value can also be overridden with a TYBOT_* environment variable.

Examples:
  tybotctl config view
  tybotctl config get api_url
  tybotctl config set api_url https://api.tybot.example/api/v1
  tybotctl config path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it.

Valid keys: ` + strings.Join(config.Keys(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		// Mutate the on-disk config, not the flag-overridden runtime view.
		onDisk, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := onDisk.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := onDisk.Save(path); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}
