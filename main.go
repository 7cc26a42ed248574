package main

import (
	"os"

	"github.com/eduforge/eduforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
