// Package main provides the entry point for the uecheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Aman-CERP/uecheck/cmd/uecheck/cmd"
	"github.com/Aman-CERP/uecheck/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprint(os.Stderr, errors.FormatForCLI(err))
		}
		os.Exit(errors.ExitCode(err))
	}
}
