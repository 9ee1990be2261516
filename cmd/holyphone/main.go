package main

import (
	"os"

	"holyland_phone/cmd/holyphone/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
