package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"medassist/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "medassist",
	Short: "medassist - prescription reading and symptom triage from the command line",
	Long: `medassist extracts structured information from prescription images and
PDFs and analyzes free-text symptom descriptions.

The prescription pipeline preprocesses the image, runs OCR, and parses
medicine names, dosages, and schedules into a safety-annotated summary.
The symptom pipeline detects known symptoms, matches them against a
condition database, and produces triage guidance.

All output is informational only and never a substitute for professional
medical advice.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("medassist CLI executed")

		fmt.Println("Welcome to medassist!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
