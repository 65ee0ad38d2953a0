// Package ocr turns prescription images and PDFs into cleaned text.
//
// The package owns the whole text-acquisition path: image preprocessing
// (grayscale, adaptive threshold, denoise), invoking a recognition engine,
// per-word confidence averaging, text normalization, and quality gating.
// Two engines are supported behind the Engine interface:
//   - Tesseract via gosseract (local, default)
//   - Google Cloud Vision document text detection (cloud)
//
// Quality gating policy:
//   - cleaned text shorter than 10 characters is treated as unreadable
//     input, not a crash;
//   - average word confidence below 50 prepends a strong warning to the
//     text, below 70 a moderate caution; 70 and above passes silently.
//
// Expected failures (undecodable file, unreadable text, engine fault) are
// surfaced as a non-success ExtractionResult carrying a human-readable
// reason. Engine construction is the only operation that returns an error.
package ocr

import (
	"context"

	"github.com/rs/zerolog"

	"medassist/internal/logger"
)

// Quality thresholds applied by the extraction service.
const (
	// MinReadableLength is the minimum cleaned-text length below which the
	// extraction is reported as unreadable.
	MinReadableLength = 10

	// LowConfidenceThreshold is the average word confidence (0-100) below
	// which a strong inaccuracy warning is prepended to the text.
	LowConfidenceThreshold = 50

	// ModerateConfidenceThreshold is the average word confidence below
	// which a caution about dosages and medicine names is prepended.
	ModerateConfidenceThreshold = 70
)

// Recognition is the raw output of a recognition engine: the page text and
// the per-word confidence values on a 0-100 scale. Engines report words
// without a usable confidence as negative values; the service discards
// those before averaging.
type Recognition struct {
	Text            string
	WordConfidences []float64
}

// Engine is a text-recognition capability operating on a PNG-encoded,
// preprocessed raster.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string

	// Recognize runs text recognition on the PNG image data.
	Recognize(ctx context.Context, png []byte) (*Recognition, error)
}

// ExtractionResult is the outcome of a text-extraction attempt.
//
// When Success is false, Text carries a human-readable failure reason
// instead of content. QualityScore is the average word confidence (0-100)
// for the image path; the PDF path does not score and leaves it at zero.
type ExtractionResult struct {
	Text         string  `json:"text"`
	Success      bool    `json:"success"`
	QualityScore float64 `json:"quality_score"`
}

// Service extracts text from prescription files.
type Service struct {
	engine Engine
	log    zerolog.Logger
}

// NewService creates an extraction service backed by the given engine.
func NewService(engine Engine) *Service {
	return &Service{
		engine: engine,
		log:    logger.WithComponent("ocr"),
	}
}
