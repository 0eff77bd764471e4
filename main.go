package main

import (
	"os"

	"github.com/leefowlercu/docweave/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
