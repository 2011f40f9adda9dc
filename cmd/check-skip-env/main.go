package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gruntwork-io/pre-commit/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(cli.ExitFailure)
		}
	}()

	err := cli.NewRootCmd().Execute()
	cli.PrintError(os.Stderr, err)
	os.Exit(cli.ExitCode(err))
}
