package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	userPage  int
	userLimit int
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administer user accounts (admin only)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, pagination, err := shop.Users.List(cmd.Context(), userPage, userLimit)
		if err != nil {
			return err
		}
		for _, u := range list {
			state := "active"
			if !u.IsActive {
				state = "disabled"
			}
			fmt.Printf("%-38s %-30s %-10s %s\n", u.ID, u.Email, u.Role.Name, state)
		}
		if pagination != nil {
			fmt.Printf("page %d/%d (%d users)\n", pagination.Page, pagination.TotalPages, pagination.Total)
		}
		return nil
	},
}

var usersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Disable a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := shop.Users.Deactivate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("User %s deactivated\n", user.Email)
		return nil
	},
}

var usersActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Re-enable a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := shop.Users.Activate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("User %s activated\n", user.Email)
		return nil
	},
}

func init() {
	usersListCmd.Flags().IntVar(&userPage, "page", 0, "page number")
	usersListCmd.Flags().IntVar(&userLimit, "limit", 0, "page size")

	usersCmd.AddCommand(usersListCmd, usersDeactivateCmd, usersActivateCmd)
	rootCmd.AddCommand(usersCmd)
}
