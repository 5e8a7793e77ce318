package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tybotlabs/tybotctl/internal/platform"
	"github.com/tybotlabs/tybotctl/internal/ux"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Manage workspaces",
	Long: `Manage workspaces inside tenant domaines.

Examples:
  tybotctl workspaces list --domaine-id 3
  tybotctl workspaces create --name support --domaine-id 3 --solde 500`,
	PersistentPreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var workspacesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		domaineID, _ := cmd.Flags().GetInt64("domaine-id")

		workspaces, err := getClient().ListWorkspaces(cmd.Context(), domaineID)
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "NAME", "DOMAINE", "SOLDE", "ACTIVE", "DELETED")
		for _, w := range workspaces {
			table.AddRow(
				strconv.FormatInt(w.ID, 10),
				w.WorkspaceName,
				strconv.FormatInt(w.DomaineID, 10),
				formatAmount(w.SoldeTotal),
				formatBool(w.Active),
				formatBool(w.Deleted),
			)
		}
		return output(workspaces, table)
	},
}

var workspacesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := workspaceRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		w, err := getClient().CreateWorkspace(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created workspace %d (%s)\n", w.ID, w.WorkspaceName)
		return nil
	},
}

var workspacesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req, err := workspaceRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		w, err := getClient().UpdateWorkspace(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated workspace %d\n", w.ID)
		return nil
	},
}

var workspacesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Toggle a workspace's deleted flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleWorkspaceDeleted(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled deleted flag on workspace %d\n", id)
		return nil
	},
}

var workspacesActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Activate a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ActivateWorkspace(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Activated workspace %d\n", id)
		return nil
	},
}

func workspaceRequestFromFlags(cmd *cobra.Command) (platform.WorkspaceRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	domaineID, _ := cmd.Flags().GetInt64("domaine-id")
	solde, _ := cmd.Flags().GetFloat64("solde")

	if name == "" {
		return platform.WorkspaceRequest{}, fmt.Errorf("--name is required")
	}
	if domaineID <= 0 {
		return platform.WorkspaceRequest{}, fmt.Errorf("--domaine-id is required")
	}

	return platform.WorkspaceRequest{
		WorkspaceName: name,
		DomaineID:     domaineID,
		SoldeTotal:    solde,
	}, nil
}

func addWorkspaceRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "workspace name")
	cmd.Flags().Int64("domaine-id", 0, "owning domaine")
	cmd.Flags().Float64("solde", 0, "token balance")
}

func init() {
	workspacesListCmd.Flags().Int64("domaine-id", 0, "filter by domaine")

	addWorkspaceRequestFlags(workspacesCreateCmd)
	addWorkspaceRequestFlags(workspacesUpdateCmd)

	workspacesCmd.AddCommand(workspacesListCmd)
	workspacesCmd.AddCommand(workspacesCreateCmd)
	workspacesCmd.AddCommand(workspacesUpdateCmd)
	workspacesCmd.AddCommand(workspacesDeleteCmd)
	workspacesCmd.AddCommand(workspacesActivateCmd)

	rootCmd.AddCommand(workspacesCmd)
}
