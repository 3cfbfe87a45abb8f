package main

import (
	"os"

	"github.com/hrsuite/cvadmin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
