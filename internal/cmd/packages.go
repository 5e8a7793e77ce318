package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tybotlabs/tybotctl/internal/platform"
	"github.com/tybotlabs/tybotctl/internal/ux"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Manage subscription packages",
	Long: `Manage subscription packages: the workspace, chatbot, domaine and token
quotas sold to tenants.

Examples:
  tybotctl packages list --page 1
  tybotctl packages create --name Starter --workspaces 3 --chatbots 5 --domaines 1 --solde 1000`,
	PersistentPreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var packagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit = cfg.PageLimit
		}

		result, err := getClient().ListPackages(cmd.Context(), page, limit)
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "NAME", "WORKSPACES", "CHATBOTS", "DOMAINES", "SOLDE", "ACTIVE")
		for _, p := range result.Items {
			table.AddRow(
				strconv.FormatInt(p.ID, 10),
				p.PackageName,
				strconv.Itoa(p.NumberWorkspace),
				strconv.Itoa(p.NumberChatbot),
				strconv.Itoa(p.NumberDomaine),
				formatAmount(p.SoldeTotal),
				formatBool(p.Active),
			)
		}
		if err := output(result.Items, table); err != nil {
			return err
		}
		if page > 0 && result.TotalPages > 0 && cfg.Format == "text" {
			fmt.Printf("Page %d of %d\n", page, result.TotalPages)
		}
		return nil
	},
}

var packagesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a package",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := packageRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		p, err := getClient().CreatePackage(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created package %d (%s)\n", p.ID, p.PackageName)
		return nil
	},
}

var packagesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req, err := packageRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		p, err := getClient().UpdatePackage(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated package %d\n", p.ID)
		return nil
	},
}

var packagesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Toggle a package's deleted flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().TogglePackageDeleted(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled deleted flag on package %d\n", id)
		return nil
	},
}

var packagesActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Toggle a package's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().TogglePackageActive(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled active flag on package %d\n", id)
		return nil
	},
}

func packageRequestFromFlags(cmd *cobra.Command) (platform.PackageRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	workspaces, _ := cmd.Flags().GetInt("workspaces")
	chatbots, _ := cmd.Flags().GetInt("chatbots")
	domaines, _ := cmd.Flags().GetInt("domaines")
	solde, _ := cmd.Flags().GetFloat64("solde")

	if name == "" {
		return platform.PackageRequest{}, fmt.Errorf("--name is required")
	}

	return platform.PackageRequest{
		PackageName:        name,
		PackageDescription: description,
		NumberWorkspace:    workspaces,
		NumberChatbot:      chatbots,
		NumberDomaine:      domaines,
		SoldeTotal:         solde,
	}, nil
}

func addPackageRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "package name")
	cmd.Flags().String("description", "", "package description")
	cmd.Flags().Int("workspaces", 0, "workspace quota")
	cmd.Flags().Int("chatbots", 0, "chatbot quota")
	cmd.Flags().Int("domaines", 0, "domaine quota")
	cmd.Flags().Float64("solde", 0, "token balance included in the package")
}

func init() {
	packagesListCmd.Flags().Int("page", 0, "page number (0 lists everything)")
	packagesListCmd.Flags().Int("limit", 0, "page size (defaults to config page_limit)")

	addPackageRequestFlags(packagesCreateCmd)
	addPackageRequestFlags(packagesUpdateCmd)

	packagesCmd.AddCommand(packagesListCmd)
	packagesCmd.AddCommand(packagesCreateCmd)
	packagesCmd.AddCommand(packagesUpdateCmd)
	packagesCmd.AddCommand(packagesDeleteCmd)
	packagesCmd.AddCommand(packagesActivateCmd)

	rootCmd.AddCommand(packagesCmd)
}
