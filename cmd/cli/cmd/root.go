// Package cmd provides the CLI commands for economy.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"resource-economy/core/engine"
	"resource-economy/core/ui"
	"resource-economy/internal/config"
	"resource-economy/internal/errors"
	"resource-economy/internal/logging"
)

// Version is the CLI version
var Version = "0.1.0"

var (
	cfgFile       string
	verbose       bool
	noColor       bool
	resourcesPath string
	seasonsPath   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "economy",
	Short: "Analyze the resource economy of a trading game",
	Long: `economy prices game resources by season and world event and
renders analysis charts of the whole economy.

Examples:
  economy generate
  economy generate --output ./charts --timeline --workbook
  economy quote wine --season fall --event war
  economy range salt
  economy report --format markdown`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Errors are reported on stderr with their context.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(os.Stderr, err)
	}
	logging.Sync()
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "economy.hcl", "config file (.hcl or .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&resourcesPath, "resources", "", "resource catalog JSON (overrides config)")
	rootCmd.PersistentFlags().StringVar(&seasonsPath, "seasons", "", "biome season sequence JSON (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if resourcesPath != "" {
		cfg.Data.Resources = resourcesPath
	}
	if seasonsPath != "" {
		cfg.Data.BiomeSeasons = seasonsPath
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newWriter returns the console writer for a command
func newWriter(cmd *cobra.Command) *ui.Writer {
	w := ui.NewWriter(cmd.OutOrStdout(), noColor)
	if verbose {
		w.SetVerbosity(2)
	}
	return w
}

// newEngine returns a pricing engine over the configured inputs
func newEngine() *engine.Engine {
	cfg := config.Get()
	return engine.NewEngine(engine.EngineConfig{
		ResourcesPath:    cfg.Data.Resources,
		BiomeSeasonsPath: cfg.Data.BiomeSeasons,
	})
}

// reportError prints an error and the file or resource it concerns
func reportError(out io.Writer, err error) {
	w := ui.NewWriter(out, noColor)

	var e *errors.Error
	if !stderrors.As(err, &e) {
		w.Error("%v", err)
		return
	}

	w.Error("%s", e.Error())
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.Println("    %s: %v", k, e.Context[k])
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "economy version %s\n", Version)
	},
}
