package main

import (
	"log"
	"os"

	"bankist-ledger/cmd"
)

func main() {
	log.SetOutput(os.Stdout)
	// Ldate | Ltime for date and time, Lshortfile for file:line
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cmd.Execute()
}
