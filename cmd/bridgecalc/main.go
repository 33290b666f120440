package main

import (
	"os"

	"github.com/alexshd/bridgecalc/cmd/bridgecalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
