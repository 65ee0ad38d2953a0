package prescription

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"medassist/internal/logger"
	"medassist/internal/ocr"
)

// Service runs the full prescription pipeline: file -> text extraction ->
// medicine parsing -> explanation rendering.
type Service struct {
	ocr *ocr.Service
	log zerolog.Logger
}

// NewService creates a prescription processing service on top of the
// given extraction service.
func NewService(ocrService *ocr.Service) *Service {
	return &Service{
		ocr: ocrService,
		log: logger.WithComponent("prescription"),
	}
}

// Result is the outcome of processing one prescription file. When Success
// is false, FailureReason carries the human-readable cause and the other
// fields are empty.
type Result struct {
	Success       bool       `json:"success"`
	FailureReason string     `json:"failure_reason,omitempty"`
	ExtractedText string     `json:"extracted_text,omitempty"`
	QualityScore  float64    `json:"quality_score,omitempty"`
	Extraction    Extraction `json:"extraction"`
	Explanation   string     `json:"explanation,omitempty"`
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// SupportedExtension reports whether the pipeline can process files with
// the given extension (lowercased, including the leading dot).
func SupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	return imageExtensions[ext] || ext == ".pdf"
}

// ProcessFile extracts text from the file at path (dispatching on the
// declared extension), parses medicines, and renders the explanation.
// Expected failures (unsupported type, unreadable input) come back as a
// non-success Result, never as a panic.
func (s *Service) ProcessFile(ctx context.Context, path, ext string) Result {
	ext = strings.ToLower(ext)

	var extracted ocr.ExtractionResult
	switch {
	case imageExtensions[ext]:
		extracted = s.ocr.ExtractFromImage(ctx, path)
	case ext == ".pdf":
		extracted = s.ocr.ExtractFromPDF(ctx, path)
	default:
		s.log.Warn().Str("extension", ext).Msg("Unsupported file type")
		return Result{FailureReason: "Unsupported file type"}
	}

	if !extracted.Success {
		s.log.Warn().
			Str("file", path).
			Str("reason", extracted.Text).
			Msg("Text extraction failed")
		return Result{FailureReason: extracted.Text}
	}

	extraction := ParseMedicines(extracted.Text)

	s.log.Info().
		Str("file", path).
		Int("text_length", len(extracted.Text)).
		Float64("quality_score", extracted.QualityScore).
		Int("medicines", len(extraction.Medicines)).
		Bool("detected", extraction.Detected()).
		Msg("Prescription processing completed")

	return Result{
		Success:       true,
		ExtractedText: extracted.Text,
		QualityScore:  extracted.QualityScore,
		Extraction:    extraction,
		Explanation:   Explain(extraction),
	}
}
