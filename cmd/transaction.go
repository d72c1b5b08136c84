package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankist-ledger/app"
)

var (
	transferTo        string
	transferAmountStr string
	loanAmountStr     string
)

// transferCmd represents the transfer command.
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer funds to another account",
	Long: `Transfers a positive amount from the current account to the recipient
named by derived username. The transfer applies fully or not at all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(transferAmountStr)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %v", transferAmountStr, err)
		}

		stmt, err := ledger.Transfer(app.TransferCommand{
			ToUsername: transferTo,
			Amount:     amount,
		})
		if err != nil {
			return fmt.Errorf("transfer failed: %w", err)
		}

		fmt.Printf("Transferred %s to '%s'.\n", amount.StringFixed(2), transferTo)
		printStatement(stmt)
		return nil
	},
}

// loanCmd represents the loan command.
var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Request a loan on the current account",
	Long: `Requests a loan. The request is granted only when some existing
movement is at least 10% of the requested amount; the loan arrives as a
single deposit movement.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(loanAmountStr)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %v", loanAmountStr, err)
		}

		stmt, err := ledger.RequestLoan(app.LoanCommand{Amount: amount})
		if err != nil {
			return fmt.Errorf("loan request failed: %w", err)
		}

		fmt.Printf("Loan of %s granted.\n", amount.StringFixed(2))
		printStatement(stmt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(loanCmd)

	transferCmd.Flags().StringVar(&transferTo, "to", "", "Recipient's derived username (required)")
	transferCmd.Flags().StringVar(&transferAmountStr, "amount", "", "Amount to transfer (required)")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("amount")

	loanCmd.Flags().StringVar(&loanAmountStr, "amount", "", "Requested loan amount (required)")
	_ = loanCmd.MarkFlagRequired("amount")
}
