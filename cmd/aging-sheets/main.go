package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arledger/aging-sheets/commands"
)

func main() {
	root := commands.NewRootCommand()

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(commands.ExitCode(err))
	}
}
