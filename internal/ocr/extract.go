package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/sunshineplan/imgconv"
)

// ExtractFromImage runs the full image path: preprocess the file at path,
// recognize text, clean it, and apply the quality gates. Failures of any
// kind come back as a non-success result, never as a panic or error.
func (s *Service) ExtractFromImage(ctx context.Context, path string) ExtractionResult {
	raster, err := PreprocessImage(path)
	if err != nil {
		s.log.Error().Err(err).Str("file", path).Msg("Image preprocessing failed")
		return ExtractionResult{
			Text:    "Failed to preprocess image. Please ensure the image is clear and not corrupted.",
			Success: false,
		}
	}

	return s.ExtractFromRaster(ctx, raster)
}

// ExtractFromRaster recognizes text on an already-preprocessed raster.
func (s *Service) ExtractFromRaster(ctx context.Context, raster *image.Gray) ExtractionResult {
	var buf bytes.Buffer
	if err := imgconv.Write(&buf, raster, &imgconv.FormatOption{Format: imgconv.PNG}); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode preprocessed raster")
		return ExtractionResult{
			Text:    fmt.Sprintf("OCR extraction failed: %v", err),
			Success: false,
		}
	}

	rec, err := s.engine.Recognize(ctx, buf.Bytes())
	if err != nil {
		s.log.Error().Err(err).Str("engine", s.engine.Name()).Msg("Text recognition failed")
		return ExtractionResult{
			Text:    fmt.Sprintf("OCR extraction failed: %v", err),
			Success: false,
		}
	}

	text := CleanText(rec.Text)
	avgConfidence := averageConfidence(rec.WordConfidences)

	s.log.Debug().
		Str("engine", s.engine.Name()).
		Int("text_length", len(text)).
		Float64("avg_confidence", avgConfidence).
		Msg("Recognition completed")

	if len(strings.TrimSpace(text)) < MinReadableLength {
		return ExtractionResult{
			Text:    "No readable text found. Please upload a clearer image with better lighting.",
			Success: false,
		}
	}

	return ExtractionResult{
		Text:         qualityWarning(avgConfidence) + text,
		Success:      true,
		QualityScore: avgConfidence,
	}
}

// ExtractFromPDF extracts text from the PDF at path, concatenating pages
// with a line separator. PDF text extraction is assumed exact, so no
// confidence scoring is applied; only the minimum-length gate runs.
func (s *Service) ExtractFromPDF(ctx context.Context, path string) ExtractionResult {
	if err := ctx.Err(); err != nil {
		return ExtractionResult{
			Text:    fmt.Sprintf("PDF extraction failed: %v", err),
			Success: false,
		}
	}

	pages, err := extractPDFPages(path)
	if err != nil {
		s.log.Error().Err(err).Str("file", path).Msg("PDF extraction failed")
		return ExtractionResult{
			Text:    fmt.Sprintf("PDF extraction failed: %v", err),
			Success: false,
		}
	}

	text := CleanText(strings.Join(pages, "\n"))

	s.log.Debug().
		Int("pages", len(pages)).
		Int("text_length", len(text)).
		Msg("PDF text extraction completed")

	if len(strings.TrimSpace(text)) < MinReadableLength {
		return ExtractionResult{
			Text:    "No readable text found in the PDF",
			Success: false,
		}
	}

	return ExtractionResult{Text: text, Success: true}
}

// averageConfidence averages word confidences after discarding the
// negative "no confidence" sentinel entries. No usable entries yields 0,
// which the gating treats as lowest quality.
func averageConfidence(confidences []float64) float64 {
	sum, count := 0.0, 0
	for _, c := range confidences {
		if c < 0 {
			continue
		}
		sum += c
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// qualityWarning returns the warning banner to prepend to extracted text
// for the given average confidence, or an empty string above the
// moderate threshold.
func qualityWarning(avgConfidence float64) string {
	switch {
	case avgConfidence < LowConfidenceThreshold:
		return fmt.Sprintf("\n\nWARNING: Low OCR confidence (%.0f%%). Text may be inaccurate. Please verify all information carefully.\n", avgConfidence)
	case avgConfidence < ModerateConfidenceThreshold:
		return fmt.Sprintf("\n\nCAUTION: Moderate OCR quality (%.0f%%). Double-check all dosages and medicine names.\n", avgConfidence)
	default:
		return ""
	}
}
