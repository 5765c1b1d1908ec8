package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/balkashynov/servicenote/internal/commands"
)

// Set by the release build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
