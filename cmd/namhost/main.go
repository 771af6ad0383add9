// SPDX-License-Identifier: EPL-2.0

// Command namhost runs audio files through a neural amp model.
//
// Usage:
//
//	namhost [flags] <command> [args]
//
// Commands:
//
//	info    - load a model and print what it expects
//	render  - process an audio file and write the result as WAV
//
// The native engine is only linked when building with -tags nam; without
// it every command that loads a model fails.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/namhost/cmd/namhost/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
