package main

import (
	"errors"
	"fmt"
	"os"

	"modelctx/internal/cli"
)

func main() {
	if err := cli.BuildRootCmd().Execute(); err != nil {
		if !errors.Is(err, cli.ErrHandled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
