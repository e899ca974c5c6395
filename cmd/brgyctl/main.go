package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/barangayan/brgyems/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand(os.Stdout, cli.OpenFromEnv(os.Stderr))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "brgyctl: %v\n", err)
		var withExit interface{ ExitCode() int }
		if errors.As(err, &withExit) {
			os.Exit(withExit.ExitCode())
		}
		os.Exit(cli.ExitCodeGeneric)
	}
}
