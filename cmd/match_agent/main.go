// Package main provides the match_agent CLI for scoring candidates against job requirements.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/config"
	"github.com/jonathan/candidate-matcher/internal/logging"
	"github.com/jonathan/candidate-matcher/internal/ranking"
)

var (
	cfgFile  string
	logDebug bool
	logJSON  bool

	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Candidate/requirement matching engine",
	Long:  "match_agent scores candidate records against job requirement records across skills, experience, education, keywords, location and industry.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&logDebug, "debug", "d", false, "Verbose/debug logging")
	rootCmd.PersistentFlags().BoolVarP(&logJSON, "json", "j", false, "JSON format for logging")
}

// setup loads configuration and builds the logger shared by all commands.
func setup() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg.Log.Debug = cfg.Log.Debug || logDebug
	cfg.Log.JSON = cfg.Log.JSON || logJSON

	l, err := logging.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appConfig = cfg
	logger = l
	return nil
}

func newEngine() *ranking.Engine {
	return ranking.NewEngine(ranking.WithLogger(logger))
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
