package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankist-ledger/app"
)

var movementsSorted bool

// queryCmd represents the query command group.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the current account",
	Long:  `Provides read-only views of the current account: statement, movements, and balance.`,
}

// statementCmd represents the statement command.
var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Print the full statement",
	Long: `Prints the current account's movements (honoring the session sort
flag), balance, and summary figures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, err := ledger.Statement()
		if err != nil {
			return fmt.Errorf("failed to get statement: %w", err)
		}
		printStatement(stmt)
		return nil
	},
}

// movementsCmd represents the movements command.
var movementsCmd = &cobra.Command{
	Use:   "movements",
	Short: "List the current account's movements",
	Long: `Lists the current account's movements. With --sorted the list is
stably sorted ascending by amount; row numbers follow the listed order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		views, err := ledger.Movements(movementsSorted)
		if err != nil {
			return fmt.Errorf("failed to get movements: %w", err)
		}

		for i := len(views) - 1; i >= 0; i-- {
			v := views[i]
			fmt.Printf("%d %s: %s\n", v.Index, v.Kind, v.Amount.StringFixed(2))
		}
		return nil
	},
}

// balanceCmd represents the balance command.
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the current account's balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, err := ledger.Statement()
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		fmt.Printf("%s\n", stmt.Balance.StringFixed(2))
		return nil
	},
}

// printStatement renders a statement the way the original app refreshes its
// UI: movements newest-iteration-first, then balance, then the summary row.
func printStatement(stmt *app.Statement) {
	fmt.Printf("Statement for %s ('%s'):\n", stmt.Owner, stmt.Username)
	for i := len(stmt.Movements) - 1; i >= 0; i-- {
		v := stmt.Movements[i]
		fmt.Printf("  %d %s: %s\n", v.Index, v.Kind, v.Amount.StringFixed(2))
	}
	fmt.Printf("Balance:     %s\n", stmt.Balance.StringFixed(2))
	fmt.Printf("In:          %s\n", stmt.TotalDeposits.StringFixed(2))
	fmt.Printf("Out:         %s\n", stmt.TotalWithdrawals.StringFixed(2))
	fmt.Printf("Interest:    %s\n", stmt.TotalInterest.StringFixed(2))
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.AddCommand(statementCmd)
	queryCmd.AddCommand(movementsCmd)
	queryCmd.AddCommand(balanceCmd)

	movementsCmd.Flags().BoolVar(&movementsSorted, "sorted", false, "Sort ascending by amount instead of insertion order")
}
