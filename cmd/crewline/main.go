package main

import (
	"os"

	"github.com/moolen/crewline/cmd/crewline/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
