package main

import (
	"os"

	"github.com/lincli/lincli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
