package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teller/atmsim/atm"
	"github.com/teller/atmsim/config"
	"github.com/teller/atmsim/ledger"
	"github.com/teller/atmsim/pkg/logging"
	"github.com/teller/atmsim/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive ATM session",
	Long: `Start an interactive terminal session against the account ledger.

Without a config file the ATM uses the classic defaults: accounts are kept
in a users.txt flat file in the working directory.

Example:
  atm run --config atm.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	logging.Setup(cfg.Log.Level)

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	l, err := ledger.New(st)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	ui := newUI(atm.NewSession(l), os.Stdin, os.Stdout)
	return ui.loop()
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Store.Type == "sqlite" {
		return store.NewSQLite(cfg.Store.Path)
	}
	return store.NewFlatfile(cfg.Store.Path), nil
}
