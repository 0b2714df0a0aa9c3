// SPDX-License-Identifier: MIT

// Command pxmatrix evaluates matrix operations on YAML grid documents.
//
//	pxmatrix det a.yaml
//	pxmatrix inv --precision 3 a.yaml
//	pxmatrix mul a.yaml b.yaml
package main

import (
	"os"

	"github.com/leonickl/pxp-matrix/internal/cli"
)

func main() {
	// On failure Cobra prints the error string, so we only
	// need to exit with a non-0 status
	if cli.NewCommand().Execute() != nil {
		os.Exit(1)
	}
}
