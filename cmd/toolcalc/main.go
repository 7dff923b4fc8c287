// toolcalc — CNC Milling Tool Cost Calculator
//
// A command line engineering calculator for CNC milling tool selection:
// tool life, cutting forces, power, cost per part, OEE, and side-by-side
// tool comparison with savings projections and PDF reports.
//
// Build:
//   go build -o toolcalc ./cmd/toolcalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o toolcalc.exe ./cmd/toolcalc
//   GOOS=darwin  GOARCH=amd64 go build -o toolcalc-darwin ./cmd/toolcalc

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
