package main

import (
	"os"

	"github.com/dmitrijs2005/shopctl/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
