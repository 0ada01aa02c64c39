package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gamehub/internal/config"
	"gamehub/internal/igdb"
)

// rootOptions are the persistent flags shared by every command
type rootOptions struct {
	configPath string
	logFile    string
	verbose    bool

	cfg     *config.Config
	logSink io.Closer
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gamehub",
		Short: "Browse the top rated games on IGDB from your terminal",
		Long: `gamehub lists the highest rated games from the IGDB catalog.

Credentials are read from the config file, from a .env file in the
working directory, or from IGDB_CLIENT_ID and IGDB_TOKEN.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logSink != nil {
				opts.logSink.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: <user config dir>/gamehub/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Log file (overrides log.file)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log HTTP request and response bodies")

	cmd.AddCommand(newBrowseCmd(opts))
	cmd.AddCommand(newTopCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// setup loads the configuration and redirects the log to a file
func (o *rootOptions) setup() error {
	cfg, err := config.NewConfigServiceAt(o.configPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.verbose {
		cfg.API.LogLevel = igdb.LogBody.String()
	}
	o.cfg = cfg

	// The TUI owns stdout, so logs always go to a file
	log.SetOutput(io.Discard)
	if cfg.Log.File != "" {
		logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		log.SetOutput(logFile)
		o.logSink = logFile
	}
	return nil
}

// client returns the shared IGDB client for the loaded configuration
func (o *rootOptions) client() (*igdb.Client, error) {
	if err := o.cfg.RequireCredentials(); err != nil {
		return nil, err
	}
	level, err := igdb.ParseLogLevel(o.cfg.API.LogLevel)
	if err != nil {
		return nil, err
	}
	return igdb.Shared(igdb.Options{
		BaseURL:  o.cfg.API.BaseURL,
		ClientID: o.cfg.API.ClientID,
		Token:    o.cfg.API.Token,
		Timeout:  o.cfg.API.Timeout.Duration,
		LogLevel: level,
	}), nil
}
