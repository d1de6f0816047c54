package main

import (
	"os"

	"github.com/msto63/extkit/cmd/extkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
