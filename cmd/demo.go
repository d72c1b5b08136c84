package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankist-ledger/app"
	"bankist-ledger/domain"
	"bankist-ledger/store"
)

// demoCmd walks the engine through every operation against a fresh seeded
// store, independent of the shared CLI service.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walk-through of the ledger engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo() error {
	log.Println("Starting Bankist Ledger demo...")

	accounts, err := store.NewSeededStore()
	if err != nil {
		return fmt.Errorf("failed to seed account store: %w", err)
	}
	service := app.NewLedgerService(accounts)

	fmt.Println("\n--- Simulating Operations ---")

	fmt.Println("\n[Step 1] Logging in as Jonas (js/1111)...")
	stmt, err := service.Authenticate(app.LoginCommand{Username: "js", PIN: "1111"})
	if err != nil {
		return fmt.Errorf("login should have succeeded: %w", err)
	}
	fmt.Printf(" -> Welcome back, %s. Balance: %s\n", stmt.FirstName, stmt.Balance.StringFixed(2))

	fmt.Println("\n[Step 1b] Testing a wrong pin (should fail)...")
	_, err = service.Authenticate(app.LoginCommand{Username: "js", PIN: "9999"})
	if errors.Is(err, domain.ErrAuthenticationFailed) {
		fmt.Printf(" -> Login rejected as expected: %v\n", err)
	} else {
		return fmt.Errorf("expected ErrAuthenticationFailed, got: %v", err)
	}

	fmt.Println("\n[Step 2] Transferring 1000 to Jessica (jd)...")
	stmt, err = service.Transfer(app.TransferCommand{ToUsername: "jd", Amount: decimal.NewFromInt(1000)})
	handleOperationError("Transfer to jd", err)
	if err == nil {
		fmt.Printf(" -> New balance: %s\n", stmt.Balance.StringFixed(2))
	}

	fmt.Println("\n[Step 2b] Testing an oversized transfer (should fail)...")
	_, err = service.Transfer(app.TransferCommand{ToUsername: "jd", Amount: decimal.NewFromInt(100000)})
	if errors.Is(err, domain.ErrInsufficientFunds) {
		fmt.Printf(" -> Transfer rejected as expected: %v\n", err)
	} else {
		return fmt.Errorf("expected ErrInsufficientFunds, got: %v", err)
	}

	fmt.Println("\n[Step 2c] Testing a self-transfer (should fail)...")
	_, err = service.Transfer(app.TransferCommand{ToUsername: "js", Amount: decimal.NewFromInt(10)})
	if errors.Is(err, domain.ErrSelfTransfer) {
		fmt.Printf(" -> Transfer rejected as expected: %v\n", err)
	} else {
		return fmt.Errorf("expected ErrSelfTransfer, got: %v", err)
	}

	fmt.Println("\n[Step 3] Requesting a 5000 loan (deposit 3000 qualifies)...")
	stmt, err = service.RequestLoan(app.LoanCommand{Amount: decimal.NewFromInt(5000)})
	handleOperationError("Loan request", err)
	if err == nil {
		fmt.Printf(" -> New balance: %s\n", stmt.Balance.StringFixed(2))
	}

	fmt.Println("\n[Step 4] Toggling movement sorting...")
	service.ToggleSort()
	stmt, err = service.Statement()
	if err != nil {
		return fmt.Errorf("statement after toggle failed: %w", err)
	}
	fmt.Println(" -> Movements sorted ascending:")
	for _, v := range stmt.Movements {
		fmt.Printf("    %d %s: %s\n", v.Index, v.Kind, v.Amount.StringFixed(2))
	}
	service.ToggleSort()

	fmt.Println("\n[Step 5] Closing Sarah's account (ss/4444)...")
	if _, err = service.Authenticate(app.LoginCommand{Username: "ss", PIN: "4444"}); err != nil {
		return fmt.Errorf("login as ss should have succeeded: %w", err)
	}
	err = service.CloseAccount(app.CloseAccountCommand{UsernameConfirm: "ss", PINConfirm: "4444"})
	handleOperationError("Close account ss", err)
	fmt.Printf(" -> Accounts remaining: %d\n", accounts.Len())

	fmt.Println("\n[Step 5b] Logging in to the closed account (should fail)...")
	_, err = service.Authenticate(app.LoginCommand{Username: "ss", PIN: "4444"})
	if errors.Is(err, domain.ErrAuthenticationFailed) {
		fmt.Printf(" -> Login rejected as expected: %v\n", err)
	} else {
		return fmt.Errorf("expected ErrAuthenticationFailed, got: %v", err)
	}

	fmt.Println("\n--- Simulation Complete ---")
	return nil
}

func handleOperationError(operationName string, err error) {
	if err != nil {
		log.Printf(" -> ERROR during operation '%s': %v", operationName, err)
	} else {
		fmt.Printf(" -> Operation '%s' successful.\n", operationName)
	}
}
