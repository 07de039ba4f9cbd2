package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"calculator/internal/cli"
)

// main evaluates expressions.txt into answers.txt and verifies it against
// expressions_checker.txt, writing results.txt. All files live in the current
// directory unless overridden by flags.
func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	inv, err := cli.ParseInvocation(os.Args[1:], cwd)
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	result, execErr := cli.Execute(context.Background(), inv, os.Stderr)
	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
	}
	os.Exit(result.ExitCode)
}
