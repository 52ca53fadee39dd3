// Package app wires fixtool's subcommands to the core library. It is
// the one place in the module allowed to import cobra, logrus,
// go-toml, and fatih/color — every other package stays a pure library
// with no CLI or logging concerns of its own.
package app

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options carries the resolved settings (config file merged with
// flags) every subcommand needs.
type options struct {
	configPath string
	dictDir    string
	logLevel   string
	color      bool
	log        *logrus.Logger
}

// NewRootCommand builds fixtool's command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fixtool",
		Short:         "Inspect and exercise a FIX tag-value protocol dictionary",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.Flags().Changed("color"))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "fixtool.toml", "path to an optional TOML config file")
	flags.StringVar(&opts.dictDir, "dict-dir", "", "directory of <version>.xml dictionaries (overrides FIXPROTO_DICT_DIR)")
	flags.StringVar(&opts.logLevel, "log-level", "", "logrus level (trace, debug, info, warn, error)")
	flags.BoolVar(&opts.color, "color", true, "colorize humanize output")

	root.AddCommand(
		newLoadCommand(opts),
		newValidateCommand(opts),
		newSerializeCommand(opts),
		newParseCommand(opts),
		newHumanizeCommand(opts),
	)

	return root
}

// resolve merges fixtool.toml (if present) with whatever flags the
// caller actually set, flags winning on conflict, and builds the
// logrus.Logger every subcommand logs through. colorFlagSet reports
// whether --color was explicitly passed, since its flag default
// (true) would otherwise be indistinguishable from an explicit one.
func (o *options) resolve(colorFlagSet bool) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}

	if o.dictDir == "" {
		o.dictDir = cfg.DictDir
	}
	if o.logLevel == "" {
		o.logLevel = cfg.LogLevel
	}
	if !colorFlagSet {
		o.color = cfg.Color
	}

	o.log = logrus.New()
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	o.log.SetLevel(level)

	return nil
}
