package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"medassist/internal/config"
	"medassist/internal/logger"
	"medassist/internal/ocr"
	"medassist/internal/prescription"
)

var prescriptionCmd = &cobra.Command{
	Use:   "prescription [file]",
	Short: "Extract and explain medicines from a prescription image or PDF",
	Long: `Process a prescription file: preprocess the image, extract text with the
configured OCR engine, parse medicine names, dosages, and schedules, and
render a safety-annotated explanation.

Accepted file types: .jpg, .jpeg, .png, .pdf

The OCR engine is selected with the OCR_ENGINE environment variable
("tesseract" by default, or "vision" for Google Cloud Vision; the latter
requires GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS).

Every extraction requires manual verification against the original
prescription. The output says so, on purpose, every time.`,
	Example: `  # Analyze a prescription photo
  medassist prescription scan.jpg

  # Analyze a PDF and save the full result as JSON
  medassist prescription prescription.pdf --json -o result.json

  # Use the cloud engine with a custom timeout
  OCR_ENGINE=vision medassist prescription scan.png --timeout 120`,
	Args: cobra.ExactArgs(1),
	RunE: runPrescription,
}

func init() {
	rootCmd.AddCommand(prescriptionCmd)

	prescriptionCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	prescriptionCmd.Flags().Bool("json", false, "Output as JSON")
	prescriptionCmd.Flags().Int("timeout", 60, "Processing timeout in seconds")
}

func runPrescription(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("prescription-cmd")

	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	filePath := args[0]
	ext := strings.ToLower(filepath.Ext(filePath))

	log.Info().
		Str("file", filePath).
		Str("extension", ext).
		Bool("json", jsonOutput).
		Int("timeout", timeoutSecs).
		Msg("Starting prescription processing")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validateInputFile(filePath, ext, cfg.MaxUploadBytes, log); err != nil {
		return err
	}

	ctx, cancel := commandContext(timeoutSecs, log)
	defer cancel()

	engine, cleanup, err := createEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	service := prescription.NewService(ocr.NewService(engine))

	startTime := time.Now()
	result := service.ProcessFile(ctx, filePath, ext)

	log.Info().
		Bool("success", result.Success).
		Int("medicines", len(result.Extraction.Medicines)).
		Dur("duration", time.Since(startTime)).
		Msg("Prescription processing finished")

	if !result.Success {
		return fmt.Errorf("prescription processing failed: %s", result.FailureReason)
	}

	return writePrescriptionOutput(result, outputPath, jsonOutput, log)
}

// validateInputFile checks that the file exists, is a regular non-empty
// file within the upload size limit, and has a supported extension.
func validateInputFile(path, ext string, maxBytes int64, log zerolog.Logger) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error().Str("file", path).Msg("File not found")
			return fmt.Errorf("file not found: %s", path)
		}
		if os.IsPermission(err) {
			log.Error().Str("file", path).Msg("Permission denied accessing file")
			return fmt.Errorf("permission denied accessing file: %s", path)
		}
		return fmt.Errorf("error accessing file: %w", err)
	}

	if !info.Mode().IsRegular() {
		log.Error().Str("file", path).Msg("Path is not a regular file")
		return fmt.Errorf("path is not a regular file: %s", path)
	}

	if info.Size() == 0 {
		log.Error().Str("file", path).Msg("File is empty")
		return fmt.Errorf("file is empty: %s", path)
	}

	if info.Size() > maxBytes {
		log.Error().
			Str("file", path).
			Int64("size", info.Size()).
			Int64("max_size", maxBytes).
			Msg("File exceeds maximum size limit")
		return fmt.Errorf("file too large (%d bytes). Maximum size is %d bytes", info.Size(), maxBytes)
	}

	if !prescription.SupportedExtension(ext) {
		log.Error().Str("extension", ext).Msg("Unsupported file type")
		return fmt.Errorf("unsupported file type %q (accepted: .jpg, .jpeg, .png, .pdf)", ext)
	}

	return nil
}

// commandContext creates a context with timeout and interrupt handling.
func commandContext(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, canceling processing")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// createEngine builds the configured OCR engine. The returned cleanup
// closes cloud clients and is a no-op for the local engine.
func createEngine(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ocr.Engine, func(), error) {
	switch cfg.OCREngine {
	case "vision":
		hasCredentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" || os.Getenv("GOOGLE_CREDENTIALS") != ""
		if !hasCredentials {
			log.Error().Msg("Google Cloud credentials not configured")
			return nil, nil, fmt.Errorf("Google Cloud credentials not configured. Please set one of:\n\n" +
				"1. GOOGLE_APPLICATION_CREDENTIALS with path to service account JSON\n" +
				"2. GOOGLE_CREDENTIALS with inline JSON\n\n" +
				"or switch back to the local engine with OCR_ENGINE=tesseract")
		}
		engine, err := ocr.NewVisionEngine(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create Vision engine")
			return nil, nil, fmt.Errorf("failed to create Vision engine: %w", err)
		}
		log.Debug().Msg("Vision engine created")
		return engine, func() {
			if closeErr := engine.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("Failed to close Vision client")
			}
		}, nil

	default:
		log.Debug().
			Str("language", cfg.TesseractLang).
			Int("psm", cfg.TesseractPSM).
			Msg("Tesseract engine created")
		return ocr.NewTesseractEngine(cfg.TesseractLang, cfg.TesseractPSM), func() {}, nil
	}
}

func writePrescriptionOutput(result prescription.Result, outputPath string, jsonOutput bool, log zerolog.Logger) error {
	var outputData []byte

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal JSON output")
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
		outputData = data
	} else {
		var b strings.Builder
		b.WriteString("=== Extracted Text ===\n\n")
		b.WriteString(result.ExtractedText)
		b.WriteString("\n\n=== Explanation ===\n\n")
		b.WriteString(result.Explanation)
		outputData = []byte(b.String())
	}

	return writeOutput(outputData, outputPath, jsonOutput, log)
}

// writeOutput writes data to the output file or stdout.
func writeOutput(data []byte, outputPath string, jsonOutput bool, log zerolog.Logger) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			log.Error().
				Err(err).
				Str("output_file", outputPath).
				Msg("Failed to write output file")
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().
			Str("output_file", outputPath).
			Int("bytes", len(data)).
			Msg("Results written to file")
		return nil
	}

	if _, err := os.Stdout.Write(data); err != nil {
		log.Error().Err(err).Msg("Failed to write to stdout")
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !jsonOutput {
		fmt.Println()
	}
	return nil
}
