package main

import (
	"os"

	"github.com/mattewlondono22/smartagents-desktop/pkg/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
