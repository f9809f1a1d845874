// Command bramsim drives a behavioral block-RAM model through a stimulus
// script and records the access trace.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bramsim",
	Short: "bramsim simulates a single-port synchronous memory block.",
	Long: `bramsim simulates a single-port synchronous memory block with ` +
		`configurable word width, depth, and read latency. A stimulus ` +
		`script is replayed cycle by cycle and the resulting access ` +
		`trace is recorded in an SQLite database.`,
}

func main() {
	// A .env file can provide defaults such as BRAMSIM_OUTPUT.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
