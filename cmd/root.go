package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bankist-ledger/app"
	"bankist-ledger/store"
)

// Shared application service instance. All commands operate on the same
// seeded in-memory store, so session-dependent commands (everything after
// login) are only meaningful inside one process: use the repl or demo
// commands.
var ledger *app.LedgerService

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bankist",
	Short: "A CLI for the in-memory Bankist ledger engine",
	Long: `bankist is a command-line interface to the Bankist ledger engine.

The engine holds four built-in demo accounts in memory and supports login,
peer-to-peer transfers, loan requests, account closure, and movement/summary
queries. Nothing is persisted: every process starts from the same seed.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	accounts, err := store.NewSeededStore()
	if err != nil {
		log.Fatalf("FATAL: failed to seed account store: %v", err)
	}
	ledger = app.NewLedgerService(accounts)

	rootCmd.AddCommand(replCmd)
}

// replCmd keeps one process alive so a login session spans commands.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Starts an interactive loop dispatching lines as bankist commands.
The login session and sort flag live for the duration of the loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Bankist REPL. Type 'exit' or 'quit' to leave.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			fields := strings.Fields(line)
			if fields[0] == "repl" {
				fmt.Println("already inside a session")
				continue
			}

			rootCmd.SetArgs(fields)
			// Errors are printed by cobra; the loop keeps going.
			_ = rootCmd.Execute()
		}

		fmt.Println("Bye.")
		return scanner.Err()
	},
}
