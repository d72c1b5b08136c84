package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankist-ledger/app"
)

var (
	loginUsername string
	loginPIN      string
	closeUsername string
	closePIN      string
)

// loginCmd represents the login command.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate as one of the demo accounts",
	Long: `Authenticates with a derived username and pin. On success the account
becomes the session's current account and its statement is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, err := ledger.Authenticate(app.LoginCommand{
			Username: loginUsername,
			PIN:      loginPIN,
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Printf("Welcome back, %s\n", stmt.FirstName)
		printStatement(stmt)
		return nil
	},
}

// closeCmd represents the close command.
var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the current account",
	Long: `Removes the current account from the store after re-confirming its
username and pin. The session is cleared on success.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := ledger.CloseAccount(app.CloseAccountCommand{
			UsernameConfirm: closeUsername,
			PINConfirm:      closePIN,
		})
		if err != nil {
			return fmt.Errorf("failed to close account: %w", err)
		}

		fmt.Printf("Account '%s' closed.\n", closeUsername)
		return nil
	},
}

// toggleSortCmd represents the toggle-sort command.
var toggleSortCmd = &cobra.Command{
	Use:   "toggle-sort",
	Short: "Flip the session's movement sort flag",
	Long: `Flips the session-local sort flag consumed by statement and movement
queries. The flag starts false (insertion order) and toggling twice restores
the original ordering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sorted := ledger.ToggleSort()
		if sorted {
			fmt.Println("Movements now sorted ascending by amount.")
		} else {
			fmt.Println("Movements now in original order.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(toggleSortCmd)

	loginCmd.Flags().StringVarP(&loginUsername, "user", "u", "", "Derived username (required)")
	loginCmd.Flags().StringVarP(&loginPIN, "pin", "p", "", "Account pin (required)")
	_ = loginCmd.MarkFlagRequired("user")
	_ = loginCmd.MarkFlagRequired("pin")

	closeCmd.Flags().StringVarP(&closeUsername, "user", "u", "", "Username confirmation (required)")
	closeCmd.Flags().StringVarP(&closePIN, "pin", "p", "", "Pin confirmation (required)")
	_ = closeCmd.MarkFlagRequired("user")
	_ = closeCmd.MarkFlagRequired("pin")
}
