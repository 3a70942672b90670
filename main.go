package main

import (
	"os"

	"github.com/cyberquest/cyberquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
