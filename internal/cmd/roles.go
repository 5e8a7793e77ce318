package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tybotlabs/tybotctl/internal/ux"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles and permissions",
	Long: `Manage platform roles and the permissions attached to them.

Examples:
  tybotctl roles list
  tybotctl roles create --name moderator
  tybotctl roles permissions list
  tybotctl roles assign-permissions 2 --permission-ids 1,4,9`,
	PersistentPreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		roles, err := getClient().ListRoles(cmd.Context())
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "NAME", "DELETED")
		for _, r := range roles {
			table.AddRow(strconv.FormatInt(r.ID, 10), r.RoleName, formatBool(r.Deleted))
		}
		return output(roles, table)
	},
}

var rolesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		role, err := getClient().CreateRole(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Printf("Created role %d (%s)\n", role.ID, role.RoleName)
		return nil
	},
}

var rolesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Toggle a role's deleted flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleRoleDeleted(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled deleted flag on role %d\n", id)
		return nil
	},
}

var rolesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the permissions attached to a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		rp, err := getClient().ListRolePermissions(cmd.Context(), id)
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "PERMISSION")
		for _, p := range rp.Permissions {
			table.AddRow(strconv.FormatInt(p.ID, 10), p.PermissionName)
		}
		return output(rp, table)
	},
}

var rolesAssignPermissionsCmd = &cobra.Command{
	Use:   "assign-permissions <id>",
	Short: "Attach permissions to a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		permissionIDs, _ := cmd.Flags().GetInt64Slice("permission-ids")
		if len(permissionIDs) == 0 {
			return fmt.Errorf("--permission-ids is required")
		}
		if err := getClient().AssignPermissions(cmd.Context(), id, permissionIDs); err != nil {
			return err
		}
		fmt.Printf("Assigned %d permission(s) to role %d\n", len(permissionIDs), id)
		return nil
	},
}

var rolesUnassignPermissionCmd = &cobra.Command{
	Use:   "unassign-permission <id>",
	Short: "Detach a permission from a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		permissionID, _ := cmd.Flags().GetInt64("permission-id")
		if permissionID <= 0 {
			return fmt.Errorf("--permission-id is required")
		}
		if err := getClient().UnassignPermission(cmd.Context(), id, permissionID); err != nil {
			return err
		}
		fmt.Printf("Removed permission %d from role %d\n", permissionID, id)
		return nil
	},
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Manage the permission catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		permissions, err := getClient().ListPermissions(cmd.Context())
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "PERMISSION")
		for _, p := range permissions {
			table.AddRow(strconv.FormatInt(p.ID, 10), p.PermissionName)
		}
		return output(permissions, table)
	},
}

var permissionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a permission",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		p, err := getClient().CreatePermission(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Printf("Created permission %d (%s)\n", p.ID, p.PermissionName)
		return nil
	},
}

var permissionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a permission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().DeletePermission(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted permission %d\n", id)
		return nil
	},
}

func init() {
	rolesCreateCmd.Flags().String("name", "", "role name")

	rolesAssignPermissionsCmd.Flags().Int64Slice("permission-ids", nil, "permission ids to attach")
	rolesUnassignPermissionCmd.Flags().Int64("permission-id", 0, "permission id to detach")

	permissionsCreateCmd.Flags().String("name", "", "permission name")

	permissionsCmd.AddCommand(permissionsListCmd)
	permissionsCmd.AddCommand(permissionsCreateCmd)
	permissionsCmd.AddCommand(permissionsDeleteCmd)

	rolesCmd.AddCommand(rolesListCmd)
	rolesCmd.AddCommand(rolesCreateCmd)
	rolesCmd.AddCommand(rolesDeleteCmd)
	rolesCmd.AddCommand(rolesShowCmd)
	rolesCmd.AddCommand(rolesAssignPermissionsCmd)
	rolesCmd.AddCommand(rolesUnassignPermissionCmd)
	rolesCmd.AddCommand(permissionsCmd)

	rootCmd.AddCommand(rolesCmd)
}
