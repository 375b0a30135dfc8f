package main

import (
	"os"

	"github.com/welltegra/welllab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
