// main holds the entry logic for the triage CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/triage/cmd"
	"github.com/huangsam/triage/internal/evalstore"
)

// main is the entry point for the triage CLI.
func main() {
	os.Exit(run())
}

// run executes the root command and ensures stores and profiles are
// flushed before the process exits.
func run() int {
	cmd.SetStoreManager(evalstore.Manager)
	defer evalstore.CloseStores()

	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Fprintln(os.Stderr, "⚠️ ", perr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		return 1
	}
	return 0
}
