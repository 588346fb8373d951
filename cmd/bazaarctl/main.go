package main

import (
	"os"

	"bazaar/cmd/bazaarctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
