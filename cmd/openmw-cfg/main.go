// Package main provides the entry point for the openmw-cfg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/openmw-tools/openmw-cfg/cmd/openmw-cfg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
