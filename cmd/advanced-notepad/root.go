package main

import (
	"io"

	"advanced-notepad/internal/app"
	"advanced-notepad/internal/config"
	"advanced-notepad/internal/debug"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "advanced-notepad [file]",
		Short: "A small desktop text editor",
		Long: `Advanced Notepad edits one plain-text file at a time with find and
replace, a live word count, font sizes and a dark mode.

Startup defaults come from the config file, a .env file and NOTEPAD_*
environment variables. Nothing is written back.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return runEditor(opts, file)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/advanced-notepad/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newCountCommand(opts))
	cmd.AddCommand(newReplaceCommand(opts))

	return cmd
}

func runEditor(opts *rootOptions, file string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.Run(file)
}

// headlessCoordinator logs only warnings unless -v is given
func (o *rootOptions) headlessCoordinator(out io.Writer) debug.Coordinator {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return debug.NewCoordinator(debug.Config{
		LogLevel:             level,
		EnableFileTracking:   o.verbose,
		EnableTimingTracking: o.verbose,
		Output:               out,
	})
}
