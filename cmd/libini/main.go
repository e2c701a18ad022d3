package main

import (
	"os"

	"github.com/msto63/libini/cmd/libini/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
