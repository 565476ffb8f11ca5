package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atm",
	Short: "An educational point-and-click ATM simulator",
	Long: `Atm is a small educational ATM simulator written in Go.

It provides tools for:
  - Running interactive teller sessions (login, register, deposit,
    withdraw, transfer, history)
  - Persisting accounts to a flat text file or a SQLite database
  - Generating and validating configuration files`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
