package main

import (
	"os"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
