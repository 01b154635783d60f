package main

import (
	"os"

	"github.com/wastewise/wastewise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
