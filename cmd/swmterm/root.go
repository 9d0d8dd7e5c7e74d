package main

import (
	"swmterm/cmd/swmterm/cli"
	"swmterm/internal/config"
	"swmterm/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	indexArg string
	qaArg    string
	debug    bool
	cfg      *config.Config
)

// NewRootCmd creates the root command. Without a subcommand it starts the
// terminal UI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "swmterm",
		Short:   "The swm.cc terminal",
		Long:    `swmterm is the terminal from swm.cc: browse Stephen's site as a file system and ask Swanson about it.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
		SilenceUsage: true,
	}

	// Prepend logo to help message
	helpTemplate := cli.DrawLogo() + "\n\n" + rootCmd.UsageTemplate()
	rootCmd.SetHelpTemplate(helpTemplate)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/swmterm/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&indexArg, "index", "", "content index path or URL (overrides index.path / index.url)")
	rootCmd.PersistentFlags().StringVar(&qaArg, "qa", "", "canned answers file, JSON or YAML")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewTUICmd())
	rootCmd.AddCommand(NewExecCmd())
	rootCmd.AddCommand(NewIndexCmd())
	rootCmd.AddCommand(NewServeCmd())

	return rootCmd
}

// loadConfig layers the config file, .env, SWMTERM_* variables and flags.
func loadConfig(cmd *cobra.Command) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	if err := config.LoadEnv(cfg, ".env"); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("index") {
		if isURL(indexArg) {
			cfg.Index.URL = indexArg
		} else {
			cfg.Index.URL = ""
			cfg.Index.Path = indexArg
		}
	}
	if flags.Changed("qa") {
		cfg.Index.QAPath = qaArg
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = debug
	}
	log.SetDebug(cfg.Log.Debug)

	return cfg.Validate()
}
