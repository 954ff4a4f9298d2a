package main

import (
	"os"

	"github.com/gravity-bridge/orchestrator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
