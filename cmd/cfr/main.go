package main

import (
	"fmt"
	"os"

	"collab-filter/cmd/cfr/cmd"
	"collab-filter/internal/config"
)

func main() {
	// A missing .env is fine; a broken one is worth a warning.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
