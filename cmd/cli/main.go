package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/terminal"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		Logger: logger,
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
