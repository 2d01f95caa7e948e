package main

import (
	"os"

	"github.com/zestie-cloud/pawmatch/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
