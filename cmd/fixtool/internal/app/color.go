package app

import (
	"strings"

	"github.com/fatih/color"
)

// colorize highlights the field separators a humanized wire message
// leaves behind, so a capture is easier to scan on a terminal. enabled
// is false when --color=false or fixtool.toml sets color = false.
func colorize(enabled bool, humanized string) string {
	if !enabled {
		return humanized
	}
	sep := color.New(color.FgHiBlack)
	sep.EnableColor()
	return strings.ReplaceAll(humanized, "|", sep.SprintFunc()("|"))
}
