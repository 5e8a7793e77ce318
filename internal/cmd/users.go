package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tybotlabs/tybotctl/internal/platform"
	"github.com/tybotlabs/tybotctl/internal/ux"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
	Long: `Manage platform users: list, create, update, deactivate and assign
roles, packages, domaines and workspaces.

Examples:
  tybotctl users list
  tybotctl users create --full-name "Jane Doe" --email jane@example.com --password secret
  tybotctl users assign-role 7 --role-id 2`,
	PersistentPreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := getClient().ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "NAME", "EMAIL", "ROLE", "SOLDE", "ACTIVE", "DELETED")
		for _, u := range users {
			table.AddRow(
				strconv.FormatInt(u.ID, 10),
				u.FullName,
				u.Email,
				u.Role,
				formatAmount(u.SoldeTotal),
				formatBool(u.Active),
				formatBool(u.Deleted),
			)
		}
		return output(users, table)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := userRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		if req.Email == "" {
			return fmt.Errorf("--email is required")
		}
		if req.Password == "" {
			return fmt.Errorf("--password is required")
		}

		user, err := getClient().CreateUser(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created user %d (%s)\n", user.ID, user.Email)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req, err := userRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		user, err := getClient().UpdateUser(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated user %d\n", user.ID)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Toggle a user's deleted flag",
	Long:  `Toggle the soft-delete flag on a user. Running it again restores the user.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleUserDeleted(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled deleted flag on user %d\n", id)
		return nil
	},
}

var usersActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Toggle a user's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleUserActive(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled active flag on user %d\n", id)
		return nil
	},
}

var usersAssignRoleCmd = &cobra.Command{
	Use:   "assign-role <id>",
	Short: "Assign a role to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		roleID, _ := cmd.Flags().GetInt64("role-id")
		if roleID <= 0 {
			return fmt.Errorf("--role-id is required")
		}
		if err := getClient().AssignRole(cmd.Context(), id, roleID); err != nil {
			return err
		}
		fmt.Printf("Assigned role %d to user %d\n", roleID, id)
		return nil
	},
}

var usersAssignPackageCmd = &cobra.Command{
	Use:   "assign-package",
	Short: "Assign a package to one or more users",
	RunE: func(cmd *cobra.Command, args []string) error {
		packageID, _ := cmd.Flags().GetInt64("package-id")
		userIDs, _ := cmd.Flags().GetInt64Slice("user-ids")
		if packageID <= 0 {
			return fmt.Errorf("--package-id is required")
		}
		if len(userIDs) == 0 {
			return fmt.Errorf("--user-ids is required")
		}
		if err := getClient().AssignPackageToUsers(cmd.Context(), packageID, userIDs); err != nil {
			return err
		}
		fmt.Printf("Assigned package %d to %d user(s)\n", packageID, len(userIDs))
		return nil
	},
}

var usersAssignDomaineCmd = &cobra.Command{
	Use:   "assign-domaine",
	Short: "Assign a domaine to one or more users",
	RunE: func(cmd *cobra.Command, args []string) error {
		domaineID, _ := cmd.Flags().GetInt64("domaine-id")
		userIDs, _ := cmd.Flags().GetInt64Slice("user-ids")
		if domaineID <= 0 {
			return fmt.Errorf("--domaine-id is required")
		}
		if len(userIDs) == 0 {
			return fmt.Errorf("--user-ids is required")
		}
		if err := getClient().AssignDomaineToUsers(cmd.Context(), domaineID, userIDs); err != nil {
			return err
		}
		fmt.Printf("Assigned domaine %d to %d user(s)\n", domaineID, len(userIDs))
		return nil
	},
}

var usersAssignWorkspaceCmd = &cobra.Command{
	Use:   "assign-workspace",
	Short: "Assign a workspace to one or more users",
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, _ := cmd.Flags().GetInt64("workspace-id")
		userIDs, _ := cmd.Flags().GetInt64Slice("user-ids")
		if workspaceID <= 0 {
			return fmt.Errorf("--workspace-id is required")
		}
		if len(userIDs) == 0 {
			return fmt.Errorf("--user-ids is required")
		}
		if err := getClient().AssignWorkspaceToUsers(cmd.Context(), workspaceID, userIDs); err != nil {
			return err
		}
		fmt.Printf("Assigned workspace %d to %d user(s)\n", workspaceID, len(userIDs))
		return nil
	},
}

func userRequestFromFlags(cmd *cobra.Command) (platform.UserRequest, error) {
	fullName, _ := cmd.Flags().GetString("full-name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	age, _ := cmd.Flags().GetInt("age")
	domaineID, _ := cmd.Flags().GetInt64("domaine-id")
	packageID, _ := cmd.Flags().GetInt64("package-id")
	solde, _ := cmd.Flags().GetFloat64("solde")

	if fullName == "" {
		return platform.UserRequest{}, fmt.Errorf("--full-name is required")
	}
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return platform.UserRequest{}, fmt.Errorf("invalid email %q", email)
		}
	}

	return platform.UserRequest{
		FullName:   fullName,
		Email:      email,
		Password:   password,
		Age:        age,
		DomaineID:  domaineID,
		PackageID:  packageID,
		SoldeTotal: solde,
	}, nil
}

func addUserRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("full-name", "", "user's full name")
	cmd.Flags().String("email", "", "user's email address")
	cmd.Flags().String("password", "", "user's password")
	cmd.Flags().Int("age", 0, "user's age")
	cmd.Flags().Int64("domaine-id", 0, "domaine to attach the user to")
	cmd.Flags().Int64("package-id", 0, "package to attach the user to")
	cmd.Flags().Float64("solde", 0, "token balance")
}

func init() {
	addUserRequestFlags(usersCreateCmd)
	addUserRequestFlags(usersUpdateCmd)

	usersAssignRoleCmd.Flags().Int64("role-id", 0, "role to assign")

	usersAssignPackageCmd.Flags().Int64("package-id", 0, "package to assign")
	usersAssignPackageCmd.Flags().Int64Slice("user-ids", nil, "target user ids")

	usersAssignDomaineCmd.Flags().Int64("domaine-id", 0, "domaine to assign")
	usersAssignDomaineCmd.Flags().Int64Slice("user-ids", nil, "target user ids")

	usersAssignWorkspaceCmd.Flags().Int64("workspace-id", 0, "workspace to assign")
	usersAssignWorkspaceCmd.Flags().Int64Slice("user-ids", nil, "target user ids")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersActivateCmd)
	usersCmd.AddCommand(usersAssignRoleCmd)
	usersCmd.AddCommand(usersAssignPackageCmd)
	usersCmd.AddCommand(usersAssignDomaineCmd)
	usersCmd.AddCommand(usersAssignWorkspaceCmd)

	rootCmd.AddCommand(usersCmd)
}
