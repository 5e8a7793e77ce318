package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tybotlabs/tybotctl/internal/platform"
	"github.com/tybotlabs/tybotctl/internal/ux"
)

var chatbotsCmd = &cobra.Command{
	Use:   "chatbots",
	Short: "Manage chatbots",
	Long: `Manage the chatbots attached to workspaces.

Examples:
  tybotctl chatbots list --page 1
  tybotctl chatbots create --name faq-bot --title "FAQ Bot" --workspace-id 10`,
	PersistentPreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var chatbotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List chatbots",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit = cfg.PageLimit
		}

		result, err := getClient().ListChatbots(cmd.Context(), page, limit)
		if err != nil {
			return err
		}

		table := ux.NewTable("ID", "NAME", "TITLE", "WORKSPACE", "SOLDE", "ACTIVE")
		for _, b := range result.Items {
			table.AddRow(
				strconv.FormatInt(b.ID, 10),
				b.ChatbotName,
				b.ChatbotTitle,
				strconv.FormatInt(b.WorkspaceID, 10),
				formatAmount(b.SoldeTotal),
				formatBool(b.Active),
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

var chatbotsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a chatbot",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := chatbotRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		b, err := getClient().CreateChatbot(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created chatbot %d (%s)\n", b.ID, b.ChatbotName)
		return nil
	},
}

var chatbotsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a chatbot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req, err := chatbotRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		b, err := getClient().UpdateChatbot(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated chatbot %d\n", b.ID)
		return nil
	},
}

var chatbotsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Toggle a chatbot's deleted flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleChatbotDeleted(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled deleted flag on chatbot %d\n", id)
		return nil
	},
}

var chatbotsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Toggle a chatbot's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := getClient().ToggleChatbotActive(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Toggled active flag on chatbot %d\n", id)
		return nil
	},
}

func chatbotRequestFromFlags(cmd *cobra.Command) (platform.ChatbotRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	workspaceID, _ := cmd.Flags().GetInt64("workspace-id")
	solde, _ := cmd.Flags().GetFloat64("solde")

	if name == "" {
		return platform.ChatbotRequest{}, fmt.Errorf("--name is required")
	}
	if workspaceID <= 0 {
		return platform.ChatbotRequest{}, fmt.Errorf("--workspace-id is required")
	}

	return platform.ChatbotRequest{
		ChatbotName:        name,
		ChatbotTitle:       title,
		ChatbotDescription: description,
		WorkspaceID:        workspaceID,
		SoldeTotal:         solde,
	}, nil
}

func addChatbotRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "chatbot name")
	cmd.Flags().String("title", "", "chatbot display title")
	cmd.Flags().String("description", "", "chatbot description")
	cmd.Flags().Int64("workspace-id", 0, "owning workspace")
	cmd.Flags().Float64("solde", 0, "token balance")
}

func init() {
	chatbotsListCmd.Flags().Int("page", 0, "page number (0 lists everything)")
	chatbotsListCmd.Flags().Int("limit", 0, "page size (defaults to config page_limit)")

	addChatbotRequestFlags(chatbotsCreateCmd)
	addChatbotRequestFlags(chatbotsUpdateCmd)

	chatbotsCmd.AddCommand(chatbotsListCmd)
	chatbotsCmd.AddCommand(chatbotsCreateCmd)
	chatbotsCmd.AddCommand(chatbotsUpdateCmd)
	chatbotsCmd.AddCommand(chatbotsDeleteCmd)
	chatbotsCmd.AddCommand(chatbotsActivateCmd)

	rootCmd.AddCommand(chatbotsCmd)
}
