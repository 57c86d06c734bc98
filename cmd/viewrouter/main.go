package main

import (
	"os"

	"github.com/dmitrymomot/viewrouter/cmd/viewrouter/commands"
)

func main() {
	cli := commands.NewRootCmd()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
