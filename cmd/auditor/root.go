package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"auditor/internal/config"
	"auditor/internal/telemetry"
)

var exit = os.Exit

var (
	cfgFile string
	// cfg is loaded before every command runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "auditor",
	Short: "Audit model-generated code for truthfulness and efficiency",
	Long: `auditor estimates the Big-O class of code samples, profiles functions
across growing input sizes, and runs an RLHF workbench that asks a hosted
model for two competing solutions and records which one a reviewer picks.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'auditor --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./auditor.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("model", "", "Model to use (overrides config and AUDITOR_MODEL env var)")
	rootCmd.PersistentFlags().String("provider", "", "Model provider (gemini, openai, openrouter, ollama, mock)")
	rootCmd.PersistentFlags().String("language", "", "Language of generated and analyzed code (python, go)")
	rootCmd.PersistentFlags().String("log-file", "", "Append structured logs to this file")
}

// loadConfig builds the configuration from flags, environment and config
// file, then sets up logging and the optional metrics endpoint.
func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	telemetry.InitLogger(c.Verbose, c.LogFile)
	telemetry.LogDebug("configuration loaded", "provider", c.Provider, "model", c.Model, "language", c.Language)

	if c.MetricsAddr != "" {
		appMetrics()
		go func() {
			if err := telemetry.StartMetricsServer(c.MetricsAddr); err != nil {
				telemetry.LogWarn("Failed to start metrics server", "error", err)
			}
		}()
	}
	return nil
}
