package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tybotlabs/tybotctl/internal/platform"
	"github.com/tybotlabs/tybotctl/internal/ux"
)

var domainesCmd = &cobra.Command{
	Use:   "domaines",
	Short: "Manage tenant domaines",
	Long: `Manage tenant domaines: the top-level accounts that own workspaces and
token balances.

Examples:
  tybotctl domaines list
  tybotctl domaines create --name acme --description "Acme Corp" --solde 5000
  tybotctl domaines assign-solde 3 --tokens 250 --workspace-ids 10,11`,
	PersistentPreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var domainesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List domaines",
	RunE: func(cmd *cobra.Command, args []string) error {
		domaines, err := getClient().ListDomaines(cmd.Context())
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "NAME", "SOLDE", "ACTIVE", "DELETED")
		for _, d := range domaines {
			table.AddRow(
				strconv.FormatInt(d.ID, 10),
				d.DomaineName,
				formatAmount(d.SoldeTotal),
				formatBool(d.Active),
				formatBool(d.Deleted),
			)
		}
		return output(domaines, table)
	},
}

var domainesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a domaine",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := domaineRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		d, err := getClient().CreateDomaine(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created domaine %d (%s)\n", d.ID, d.DomaineName)
		return nil
	},
}

var domainesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a domaine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req, err := domaineRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		d, err := getClient().UpdateDomaine(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated domaine %d\n", d.ID)
		return nil
	},
}

var domainesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Toggle a domaine's deleted flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleDomaineDeleted(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled deleted flag on domaine %d\n", id)
		return nil
	},
}

var domainesActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Toggle a domaine's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleDomaineActive(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled active flag on domaine %d\n", id)
		return nil
	},
}

var domainesAssignSoldeCmd = &cobra.Command{
	Use:   "assign-solde <id>",
	Short: "Distribute tokens from a domaine to its workspaces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		tokens, _ := cmd.Flags().GetFloat64("tokens")
		workspaceIDs, _ := cmd.Flags().GetInt64Slice("workspace-ids")
		if tokens <= 0 {
			return fmt.Errorf("--tokens must be positive")
		}
		if len(workspaceIDs) == 0 {
			return fmt.Errorf("--workspace-ids is required")
		}
		if err := getClient().AssignSoldeToWorkspaces(cmd.Context(), id, tokens, workspaceIDs); err != nil {
			return err
		}
		fmt.Printf("Assigned %s tokens from domaine %d to %d workspace(s)\n",
			formatAmount(tokens), id, len(workspaceIDs))
		return nil
	},
}

func domaineRequestFromFlags(cmd *cobra.Command) (platform.DomaineRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	solde, _ := cmd.Flags().GetFloat64("solde")

	if name == "" {
		return platform.DomaineRequest{}, fmt.Errorf("--name is required")
	}

	return platform.DomaineRequest{
		DomaineName:        name,
		DomaineDescription: description,
		SoldeTotal:         solde,
	}, nil
}

func addDomaineRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "domaine name")
	cmd.Flags().String("description", "", "domaine description")
	cmd.Flags().Float64("solde", 0, "token balance")
}

func init() {
	addDomaineRequestFlags(domainesCreateCmd)
	addDomaineRequestFlags(domainesUpdateCmd)

	domainesAssignSoldeCmd.Flags().Float64("tokens", 0, "token amount to distribute")
	domainesAssignSoldeCmd.Flags().Int64Slice("workspace-ids", nil, "target workspace ids")

	domainesCmd.AddCommand(domainesListCmd)
	domainesCmd.AddCommand(domainesCreateCmd)
	domainesCmd.AddCommand(domainesUpdateCmd)
	domainesCmd.AddCommand(domainesDeleteCmd)
	domainesCmd.AddCommand(domainesActivateCmd)
	domainesCmd.AddCommand(domainesAssignSoldeCmd)

	rootCmd.AddCommand(domainesCmd)
}
