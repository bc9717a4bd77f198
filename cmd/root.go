package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/molbridge/molbridge/config"
	"github.com/molbridge/molbridge/filter"
	"github.com/molbridge/molbridge/pubchem"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *pubchem.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	outputName string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "molbridge",
	Short: "Query the PubChem chemical database from the command line",
	Long: `molbridge is a CLI for the PubChem PUG REST API. It looks up
compounds by id, name or structure, fetches property tables, synonyms
and full records, and filters results with expressions.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata injected via ldflags.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(propertyCmd)
	rootCmd.AddCommand(synonymsCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(sdfCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	client = pubchem.NewClient(logger,
		pubchem.WithBaseURL(cfg.PubChem.BaseURL),
		pubchem.WithTimeout(cfg.PubChem.Timeout),
		pubchem.WithMaxRetries(cfg.PubChem.MaxRetries),
		pubchem.WithRetryDelay(cfg.PubChem.RetryDelay),
		pubchem.WithUserAgent(cfg.PubChem.UserAgent),
	)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveFilter turns the --filter flag into a compiled filter.
// "@name" refers to a named expression from the config file; nil
// means no filtering.
func resolveFilter() (*filter.Filter, error) {
	if filterExpr == "" {
		return nil, nil
	}
	expression := filterExpr
	if name, ok := strings.CutPrefix(filterExpr, "@"); ok {
		named, found := cfg.Filter[name]
		if !found {
			return nil, fmt.Errorf("filter %q not found in config", name)
		}
		expression = named
	}
	return filter.Compile(expression)
}
