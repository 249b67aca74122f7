package main

import (
	"os"

	"github.com/daikumatan/anonymization/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
