package main

import (
	"os"

	"github.com/teller/atmsim/cmd/atm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
