// Command fixtool is a small CLI wrapped around this module's core
// packages: load and validate a dictionary, serialize or parse a
// sample payload against it, and humanize a captured wire message for
// logging. It is explicitly not part of the core library (spec §6)
// and is free to pull in CLI, logging, and terminal-color dependencies
// the library packages themselves never touch.
package main

import (
	"os"

	"github.com/go-fixproto/fixproto/cmd/fixtool/internal/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
