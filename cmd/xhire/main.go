// Package main provides the entry point for the xhire job-discovery service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/naman/xhire/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "xhire",
	Short: "XHire job-discovery service",
	Long:  "XHire aggregates job-posting tweets, enriches them with AI-generated summaries, and serves them over a REST API, with bookmarks and a development CORS proxy.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (environment variables take precedence)")
}

// loadConfig merges the environment over an optional JSON config file and
// validates the result.
func loadConfig() (*config.Config, error) {
	cfg := config.FromEnv()

	var fileDefaults config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		fileDefaults = *loaded
	}

	merged := cfg.MergeWithDefaults(fileDefaults)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
