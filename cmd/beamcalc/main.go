// Package main is the entry point for the beamcalc CLI.
package main

import (
	"os"

	"Beamcalc/cmd/beamcalc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
