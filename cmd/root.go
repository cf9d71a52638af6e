package cmd

import (
	"github.com/codesync/autocomplete-server/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"strings"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "autocomplete",
	Short: "Next-line code suggestions backed by a hosted LLM",
	Long: `autocomplete serves POST /autocomplete: it takes a code snippet, the cursor
line and the language, asks a text-generation model for the next line, and
returns {"suggested_code": "..."}.

Configuration is read from config/.env.<APP_ENV>[.local] and the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return config.Init()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute is the entry point called from main.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// loadConfig reads and validates the config, then applies its log level
// unless --verbose already asked for debug output.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !verbose {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
		if err != nil {
			log.Warn().Str("level", cfg.LogLevel).Msg("unknown LOG_LEVEL, keeping info")
		} else {
			zerolog.SetGlobalLevel(level)
		}
	}
	return cfg, nil
}
