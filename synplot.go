package main

import (
	"os"

	"github.com/activecm/synplot/commands"
)

// Entry point of synplot
func main() {
	app := commands.NewApp()
	app.Run(os.Args)
}
