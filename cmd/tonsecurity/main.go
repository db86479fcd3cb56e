package main

import (
	"os"

	"tonsecurity/cmd/tonsecurity/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
