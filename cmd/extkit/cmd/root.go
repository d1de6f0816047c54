package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/extkit/core/config"
	mdwerror "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
)

// envPrefix prefixes environment overrides, e.g. EXTKIT_CSV_SEPARATOR
const envPrefix = "EXTKIT"

// defaults apply when neither the config file nor the environment sets a key
var defaults = map[string]interface{}{
	"log.level":              "warn",
	"log.format":             "text",
	"csv.separator":          ";",
	"csv.header":             true,
	"csv.infer_types":        false,
	"between.case_sensitive": false,
	"store.path":             "./data/tables.db",
}

// app carries the state shared by all subcommands of one run
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the extkit command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "extkit",
		Short: "extkit - Text extraction and tabular data tools",
		Long: `extkit extracts text between markers and converts, stores and
restores column-major tables in the separator-joined CSV format.

Commands:
  between  - Text between start and end markers
  csv      - Convert CSV files and manage stored table snapshots
  version  - Build information`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: discover extkit.toml/.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newBetweenCommand(a))
	rootCmd.AddCommand(newCSVCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, log.GetDefault(), err)
		return err
	}
	return nil
}

// reportError prints err for the user. Errors of a failing resource
// (database, config, internal) are also logged with their details.
func reportError(cmd *cobra.Command, logger *log.Logger, err error) {
	if mdwerror.GetSeverity(err).ShouldAlert() {
		logger.ErrorWithErr("command failed", err, log.Fields{
			"error_code": mdwerror.GetCode(err),
		})
	}
	printError(cmd, err)
}

// setup loads the configuration and installs the run's logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	format, err := log.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return fmt.Errorf("log.format: %w", err)
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "extkit",
	}).WithCorrelationID(uuid.NewString())
	if a.verbose && level > log.LevelDebug {
		a.logger.SetLevel(log.LevelDebug)
	}
	log.SetDefault(a.logger)

	a.logger.Debug("configuration loaded", log.Fields{
		"command": cmd.CommandPath(),
		"config":  cfg.FilePath(),
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  defaults,
		})
	}

	opts := config.DefaultDiscoveryOptions()
	opts.EnvPrefix = envPrefix
	opts.Defaults = defaults
	return config.Discover(opts)
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
