package main

import (
	"os"

	"github.com/ashwinkumar/biotutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
