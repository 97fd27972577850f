// Package cmd implements the mood-mirror command line interface.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mood-mirror",
	Short: "Mood analysis and well-being reports",
	Long: `mood-mirror analyzes self-reported surveys and camera-inferred mood
tags, surfaces lifestyle factors that correlate with mood, and delivers
well-being reports.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadEnv)
}

// loadEnv pulls a local .env file into the environment when present.
func loadEnv() {
	_ = godotenv.Load()
}
