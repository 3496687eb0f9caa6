package main

import (
	"fmt"
	"os"

	"github.com/moongate-games/sanctum/internal/cli"
	"github.com/moongate-games/sanctum/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
