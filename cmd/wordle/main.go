package main

import (
	"os"

	"crosswarped.com/wordle/cmd/wordle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
