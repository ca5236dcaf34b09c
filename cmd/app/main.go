package main

import (
	"os"

	"github.com/itsprakash91/flood-relief-connect/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
